package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/evalcase"
	"gorm.io/gorm"
)

type caseRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCaseRepository(db *gorm.DB) evalcase.Repository {
	return &caseRepository{db: db, now: time.Now}
}

func (r *caseRepository) Create(ctx context.Context, c *evalcase.Case) error {
	if c.ID == "" {
		c.ID = domain.NewID("case", 12)
	}
	now := r.now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *caseRepository) GetForUser(ctx context.Context, id, userID string) (*evalcase.Case, error) {
	var entity evalcase.Case
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("case", id)
		}
		return nil, err
	}
	if entity.IsOwner(userID) {
		return &entity, nil
	}
	ok, err := r.isMember(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewAccessDeniedError("case", id)
	}
	return &entity, nil
}

func (r *caseRepository) isMember(ctx context.Context, caseID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&evalcase.Member{}).
		Where("case_id = ? AND user_id = ?", caseID, userID).Count(&count).Error
	return count > 0, err
}

func (r *caseRepository) ListForUser(ctx context.Context, userID string) ([]evalcase.Case, error) {
	var cases []evalcase.Case
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Or("id IN (?)", r.db.Model(&evalcase.Member{}).Select("case_id").Where("user_id = ?", userID)).
		Order("updated_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *caseRepository) Update(ctx context.Context, id, ownerID string, name, description *string) (*evalcase.Case, error) {
	updates := map[string]interface{}{"updated_at": r.now().UTC()}
	if name != nil && *name != "" {
		updates["name"] = *name
	}
	if description != nil {
		updates["description"] = *description
	}
	res := r.db.WithContext(ctx).Model(&evalcase.Case{}).
		Where("id = ? AND user_id = ?", id, ownerID).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, r.ownerError(ctx, id)
	}
	return r.GetForUser(ctx, id, ownerID)
}

// Delete relies on ON DELETE CASCADE for versions and members.
func (r *caseRepository) Delete(ctx context.Context, id, ownerID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&evalcase.Case{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.ownerError(ctx, id)
	}
	return nil
}

func (r *caseRepository) ownerError(ctx context.Context, id string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&evalcase.Case{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.NewNotFoundError("case", id)
	}
	return domain.NewAccessDeniedError("case", id)
}

func (r *caseRepository) AddMember(ctx context.Context, m *evalcase.Member) error {
	if m.ID == "" {
		m.ID = domain.NewID("mem", 10)
	}
	if m.AddedAt.IsZero() {
		m.AddedAt = r.now().UTC()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *caseRepository) ListMembers(ctx context.Context, caseID string) ([]evalcase.Member, error) {
	var members []evalcase.Member
	if err := r.db.WithContext(ctx).Where("case_id = ?", caseID).Order("added_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
