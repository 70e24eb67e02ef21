package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/version"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestVersionRepository_CreateAssignsNextNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewVersionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT version_count FROM cases WHERE id = \$1 FOR UPDATE`).
		WithArgs("case_1").
		WillReturnRows(sqlmock.NewRows([]string{"version_count"}).AddRow(3))
	mock.ExpectExec(`INSERT INTO versions`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE cases SET version_count = \$1, latest_version = \$2, updated_at = \$3 WHERE id = \$4`).
		WithArgs(4, 4, sqlmock.AnyArg(), "case_1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	v := &version.Version{
		CaseID:           "case_1",
		UserID:           "u1",
		AnalysisResponse: domain.JSONMap{"run_id": "run_1"},
		Verdict:          "Regression",
	}
	require.NoError(t, repo.Create(context.Background(), v))

	assert.Equal(t, 4, v.VersionNumber)
	assert.Regexp(t, `^ver_[0-9a-f]{12}$`, v.ID)
	assert.False(t, v.CreatedAt.IsZero())
	assert.NotNil(t, v.RootCauses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVersionRepository_CreateKeepsCallerTimestamp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewVersionRepository(db)
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT version_count FROM cases WHERE id = \$1 FOR UPDATE`).
		WithArgs("case_1").
		WillReturnRows(sqlmock.NewRows([]string{"version_count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO versions`).
		WithArgs(
			sqlmock.AnyArg(), "case_1", "u1", 1, sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			createdAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE cases SET version_count`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	v := &version.Version{CaseID: "case_1", UserID: "u1", CreatedAt: createdAt}
	require.NoError(t, repo.Create(context.Background(), v))

	assert.Equal(t, createdAt, v.CreatedAt)
	assert.Equal(t, 1, v.VersionNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVersionRepository_CreateMissingCase(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewVersionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT version_count FROM cases`).
		WillReturnRows(sqlmock.NewRows([]string{"version_count"}))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &version.Version{CaseID: "case_x"})
	assert.True(t, domain.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseRepository_GetForUser(t *testing.T) {
	caseCols := []string{"id", "user_id", "name", "description", "version_count", "latest_version"}

	t.Run("owner", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "cases" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(caseCols).AddRow("case_1", "owner", "Tax bot", "", 2, 2))

		c, err := repository.NewCaseRepository(db).GetForUser(context.Background(), "case_1", "owner")
		require.NoError(t, err)
		assert.Equal(t, "Tax bot", c.Name)
		assert.Equal(t, 2, c.VersionCount)
	})

	t.Run("member", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "cases" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(caseCols).AddRow("case_1", "owner", "Tax bot", "", 2, 2))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "case_members" WHERE case_id = \$1 AND user_id = \$2`).
			WithArgs("case_1", "teammate").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		c, err := repository.NewCaseRepository(db).GetForUser(context.Background(), "case_1", "teammate")
		require.NoError(t, err)
		assert.Equal(t, "owner", c.UserID)
	})

	t.Run("stranger", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "cases" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(caseCols).AddRow("case_1", "owner", "Tax bot", "", 2, 2))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "case_members"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		c, err := repository.NewCaseRepository(db).GetForUser(context.Background(), "case_1", "stranger")
		assert.Nil(t, c)
		assert.True(t, domain.IsAccessDeniedError(err))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "cases" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(caseCols))

		_, err := repository.NewCaseRepository(db).GetForUser(context.Background(), "case_9", "owner")
		assert.True(t, domain.IsNotFoundError(err))
	})
}

func TestUserRepository_DecrementDeepDive(t *testing.T) {
	t.Run("consumes one", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE users SET deep_dives_remaining = deep_dives_remaining - 1`).
			WithArgs(sqlmock.AnyArg(), "u1").
			WillReturnRows(sqlmock.NewRows([]string{"deep_dives_remaining"}).AddRow(4))

		left, err := repository.NewUserRepository(db).DecrementDeepDive(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, 4, left)
	})

	t.Run("exhausted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE users SET deep_dives_remaining`).
			WillReturnRows(sqlmock.NewRows([]string{"deep_dives_remaining"}))

		_, err := repository.NewUserRepository(db).DecrementDeepDive(context.Background(), "u1")
		assert.ErrorIs(t, err, domain.ErrNoDeepDivesLeft)
	})
}
