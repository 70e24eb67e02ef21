// Package user covers account setup, provider keys and the subscription tier.
package user

import (
	"context"
	"fmt"
	"time"

	domainUser "github.com/NeuralTrust/TrustDrift/pkg/domain/user"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type Profile struct {
	User  *domainUser.User `json:"user"`
	Stats domainUser.Stats `json:"stats"`
}

type KeyStatus struct {
	HasAPIKey bool    `json:"has_api_key"`
	Preview   *string `json:"api_key_preview"`
}

type Subscription struct {
	Tier               domainUser.Tier `json:"tier"`
	IsPremium          bool            `json:"is_premium"`
	DeepDivesRemaining int             `json:"deep_dives_remaining"`
	DeepDiveResetDate  *time.Time      `json:"deep_dive_reset_date"`
}

type Upgrade struct {
	Message string `json:"message"`
	Subscription
}

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=user_service_mock.go --case=underscore --with-expecter
type Service interface {
	// Init registers the user on first sight and returns their usage stats.
	Init(ctx context.Context, userID string, req *request.InitUserRequest) (*Profile, error)
	SaveAPIKey(ctx context.Context, userID string, req *request.SaveAPIKeyRequest) error
	KeyStatus(ctx context.Context, userID string) (*KeyStatus, error)
	Subscription(ctx context.Context, userID string) (*Subscription, error)
	// UpgradeToPro is idempotent; an existing pro account keeps its remaining deep dives.
	UpgradeToPro(ctx context.Context, userID string) (*Upgrade, error)
}

type service struct {
	logger *logrus.Logger
	users  domainUser.Repository
}

func NewService(logger *logrus.Logger, users domainUser.Repository) Service {
	return &service{logger: logger, users: users}
}

func (s *service) Init(ctx context.Context, userID string, req *request.InitUserRequest) (*Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	u, err := s.users.GetOrCreate(ctx, userID, req.Email, req.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("failed to init user: %w", err)
	}
	stats, err := s.users.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}
	return &Profile{User: u, Stats: stats}, nil
}

func (s *service) SaveAPIKey(ctx context.Context, userID string, req *request.SaveAPIKeyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.users.UpdateAPIKey(ctx, userID, req.APIKey); err != nil {
		return err
	}
	s.logger.WithField("user_id", userID).Info("provider API key saved")
	return nil
}

func (s *service) KeyStatus(ctx context.Context, userID string) (*KeyStatus, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	status := &KeyStatus{HasAPIKey: u.HasAPIKey()}
	if status.HasAPIKey {
		preview := u.APIKeyPreview()
		status.Preview = &preview
	}
	return status, nil
}

func (s *service) Subscription(ctx context.Context, userID string) (*Subscription, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return subscriptionOf(u), nil
}

func (s *service) UpgradeToPro(ctx context.Context, userID string) (*Upgrade, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.IsPremium() {
		return &Upgrade{Message: "Already a PRO user", Subscription: *subscriptionOf(u)}, nil
	}

	if err := s.users.UpgradeToPro(ctx, userID, domainUser.ProDeepDives); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to upgrade user")
		return nil, fmt.Errorf("failed to upgrade user: %w", err)
	}
	u, err = s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("user_id", userID).Info("user upgraded to pro")
	return &Upgrade{Message: "Successfully upgraded to PRO", Subscription: *subscriptionOf(u)}, nil
}

func subscriptionOf(u *domainUser.User) *Subscription {
	tier := u.SubscriptionTier
	if tier != domainUser.TierPro {
		tier = domainUser.TierFree
	}
	return &Subscription{
		Tier:               tier,
		IsPremium:          u.IsPremium(),
		DeepDivesRemaining: max(u.DeepDivesRemaining, 0),
		DeepDiveResetDate:  u.DeepDiveResetDate,
	}
}
