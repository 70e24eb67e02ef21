package migrations

import (
	"github.com/NeuralTrust/TrustDrift/pkg/infra/database"
	"gorm.io/gorm"
)

// Tables: users, cases, case_members, versions
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260101_initial_schema",
		Name: "Create users, cases, case_members and versions",

		Up: func(db *gorm.DB) error {
			statements := []string{
				`CREATE TABLE IF NOT EXISTS users (
					id                   TEXT PRIMARY KEY,
					email                TEXT NOT NULL DEFAULT '',
					display_name         TEXT NOT NULL DEFAULT '',
					api_key              TEXT NOT NULL DEFAULT '',
					subscription_tier    TEXT NOT NULL DEFAULT 'free',
					deep_dives_remaining INTEGER NOT NULL DEFAULT 0 CHECK (deep_dives_remaining >= 0),
					deep_dive_reset_date TIMESTAMPTZ,
					last_login           TIMESTAMPTZ,
					created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE TABLE IF NOT EXISTS cases (
					id             TEXT PRIMARY KEY,
					user_id        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					name           TEXT NOT NULL,
					description    TEXT NOT NULL DEFAULT '',
					version_count  INTEGER NOT NULL DEFAULT 0,
					latest_version INTEGER NOT NULL DEFAULT 0,
					created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE INDEX IF NOT EXISTS idx_cases_user_updated ON cases (user_id, updated_at DESC);`,
				`CREATE TABLE IF NOT EXISTS case_members (
					id           TEXT PRIMARY KEY,
					case_id      TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
					user_id      TEXT NOT NULL,
					email        TEXT NOT NULL DEFAULT '',
					display_name TEXT NOT NULL DEFAULT '',
					role         TEXT NOT NULL,
					added_by     TEXT NOT NULL,
					added_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					UNIQUE (case_id, user_id)
				);`,
				`CREATE INDEX IF NOT EXISTS idx_case_members_user ON case_members (user_id);`,
				`CREATE TABLE IF NOT EXISTS versions (
					id                  TEXT PRIMARY KEY,
					case_id             TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
					user_id             TEXT NOT NULL,
					version_number      INTEGER NOT NULL,
					request_payload     JSONB NOT NULL DEFAULT '{}',
					analysis_response   JSONB NOT NULL DEFAULT '{}',
					cookedness_score    INTEGER NOT NULL DEFAULT 0,
					verdict             TEXT NOT NULL DEFAULT 'Unknown',
					deterministic_score INTEGER NOT NULL DEFAULT 0,
					test_case_count     INTEGER NOT NULL DEFAULT 0,
					root_causes         TEXT[] NOT NULL DEFAULT '{}',
					is_deep_dive        BOOLEAN NOT NULL DEFAULT FALSE,
					created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					UNIQUE (case_id, version_number)
				);`,
			}
			for _, stmt := range statements {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(db *gorm.DB) error {
			for _, table := range []string{"versions", "case_members", "cases", "users"} {
				if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE;").Error; err != nil {
					return err
				}
			}
			return nil
		},
	})
}
