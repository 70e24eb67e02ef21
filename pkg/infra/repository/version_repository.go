package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/version"
	"gorm.io/gorm"
)

type versionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewVersionRepository(db *gorm.DB) version.Repository {
	return &versionRepository{db: db, now: time.Now}
}

type caseCounter struct {
	VersionCount int
}

// Create locks the case row so concurrent runs on one case get consecutive numbers.
func (r *versionRepository) Create(ctx context.Context, v *version.Version) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counters []caseCounter
		if err := tx.Raw("SELECT version_count FROM cases WHERE id = ? FOR UPDATE", v.CaseID).
			Scan(&counters).Error; err != nil {
			return err
		}
		if len(counters) == 0 {
			return domain.NewNotFoundError("case", v.CaseID)
		}

		now := r.now().UTC()
		if v.ID == "" {
			v.ID = domain.NewID("ver", 12)
		}
		v.VersionNumber = counters[0].VersionCount + 1
		if v.CreatedAt.IsZero() {
			v.CreatedAt = now
		} else {
			v.CreatedAt = v.CreatedAt.UTC()
		}
		if v.RootCauses == nil {
			v.RootCauses = []string{}
		}

		if err := tx.Exec(
			`INSERT INTO versions (id, case_id, user_id, version_number, request_payload, analysis_response,
				cookedness_score, verdict, deterministic_score, test_case_count, root_causes, is_deep_dive, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			v.ID, v.CaseID, v.UserID, v.VersionNumber, v.RequestPayload, v.AnalysisResponse,
			v.CookednessScore, v.Verdict, v.DeterministicScore, v.TestCaseCount, v.RootCauses, v.IsDeepDive, v.CreatedAt,
		).Error; err != nil {
			return err
		}

		return tx.Exec(
			"UPDATE cases SET version_count = ?, latest_version = ?, updated_at = ? WHERE id = ?",
			v.VersionNumber, v.VersionNumber, now, v.CaseID,
		).Error
	})
}

func (r *versionRepository) Get(ctx context.Context, id string) (*version.Version, error) {
	var entity version.Version
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("version", id)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *versionRepository) ListByCase(ctx context.Context, caseID string, desc bool) ([]version.Version, error) {
	order := "version_number ASC"
	if desc {
		order = "version_number DESC"
	}
	var versions []version.Version
	if err := r.db.WithContext(ctx).Where("case_id = ?", caseID).Order(order).Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *versionRepository) Latest(ctx context.Context, caseID string) (*version.Version, error) {
	var entity version.Version
	err := r.db.WithContext(ctx).Where("case_id = ?", caseID).Order("version_number DESC").First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("version", caseID)
		}
		return nil, err
	}
	return &entity, nil
}
