package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db, now: time.Now}
}

func (r *userRepository) GetOrCreate(ctx context.Context, id, email, displayName string) (*user.User, error) {
	now := r.now().UTC()
	entity := user.User{
		ID:               id,
		Email:            email,
		DisplayName:      displayName,
		SubscriptionTier: user.TierFree,
		LastLogin:        &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"last_login": now}),
	}).Create(&entity).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *userRepository) Get(ctx context.Context, id string) (*user.User, error) {
	var entity user.User
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", id)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *userRepository) UpdateAPIKey(ctx context.Context, id, apiKey string) error {
	res := r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"api_key": apiKey, "updated_at": r.now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("user", id)
	}
	return nil
}

func (r *userRepository) Stats(ctx context.Context, id string) (user.Stats, error) {
	var stats user.Stats
	db := r.db.WithContext(ctx)
	if err := db.Table("cases").Where("user_id = ?", id).Count(&stats.TotalCases).Error; err != nil {
		return stats, err
	}
	if err := db.Table("versions").Where("user_id = ?", id).Count(&stats.TotalVersions).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

func (r *userRepository) UpgradeToPro(ctx context.Context, id string, deepDives int) error {
	now := r.now().UTC()
	res := r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"subscription_tier":    user.TierPro,
		"deep_dives_remaining": deepDives,
		"deep_dive_reset_date": now,
		"updated_at":           now,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("user", id)
	}
	return nil
}

func (r *userRepository) DecrementDeepDive(ctx context.Context, id string) (int, error) {
	var remaining []int
	err := r.db.WithContext(ctx).Raw(
		`UPDATE users SET deep_dives_remaining = deep_dives_remaining - 1, updated_at = ?
		 WHERE id = ? AND deep_dives_remaining > 0
		 RETURNING deep_dives_remaining`, r.now().UTC(), id,
	).Scan(&remaining).Error
	if err != nil {
		return 0, err
	}
	if len(remaining) == 0 {
		return 0, domain.ErrNoDeepDivesLeft
	}
	return remaining[0], nil
}
