package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/app/user"
	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	domainUser "github.com/NeuralTrust/TrustDrift/pkg/domain/user"
	userMocks "github.com/NeuralTrust/TrustDrift/pkg/domain/user/mocks"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (user.Service, *userMocks.Repository) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	repo := userMocks.NewRepository(t)
	return user.NewService(logger, repo), repo
}

func TestService_Init(t *testing.T) {
	svc, repo := setupService(t)
	u := &domainUser.User{ID: "u1", Email: "a@example.com", SubscriptionTier: domainUser.TierFree}
	repo.EXPECT().GetOrCreate(mock.Anything, "u1", "a@example.com", "Ana").Return(u, nil)
	repo.EXPECT().Stats(mock.Anything, "u1").Return(domainUser.Stats{TotalCases: 2, TotalVersions: 7}, nil)

	profile, err := svc.Init(context.Background(), "u1", &request.InitUserRequest{Email: "a@example.com", DisplayName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, u, profile.User)
	assert.Equal(t, int64(7), profile.Stats.TotalVersions)
}

func TestService_Init_InvalidEmail(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Init(context.Background(), "u1", &request.InitUserRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_SaveAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		repoErr error
		wantErr func(error) bool
	}{
		{name: "saved", key: " gsk_abcdefgh "},
		{name: "too short", key: "abc", wantErr: func(err error) bool { return errors.Is(err, domain.ErrInvalidInput) }},
		{name: "unknown user", key: "gsk_abcdefgh", repoErr: domain.NewNotFoundError("user", "u1"), wantErr: domain.IsNotFoundError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := setupService(t)
			if len(tt.key) >= 8 {
				repo.EXPECT().UpdateAPIKey(mock.Anything, "u1", "gsk_abcdefgh").Return(tt.repoErr)
			}

			err := svc.SaveAPIKey(context.Background(), "u1", &request.SaveAPIKeyRequest{APIKey: tt.key})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, tt.wantErr(err))
		})
	}
}

func TestService_KeyStatus(t *testing.T) {
	svc, repo := setupService(t)
	repo.EXPECT().Get(mock.Anything, "u1").Return(&domainUser.User{ID: "u1", APIKey: "gsk_1234567890"}, nil).Once()
	repo.EXPECT().Get(mock.Anything, "u2").Return(&domainUser.User{ID: "u2"}, nil).Once()

	status, err := svc.KeyStatus(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, status.HasAPIKey)
	require.NotNil(t, status.Preview)
	assert.Equal(t, "gsk_1234...", *status.Preview)

	status, err = svc.KeyStatus(context.Background(), "u2")
	require.NoError(t, err)
	assert.False(t, status.HasAPIKey)
	assert.Nil(t, status.Preview)
}

func TestService_Subscription_NormalizesTier(t *testing.T) {
	svc, repo := setupService(t)
	repo.EXPECT().Get(mock.Anything, "u1").Return(&domainUser.User{ID: "u1", SubscriptionTier: "legacy", DeepDivesRemaining: -1}, nil)

	sub, err := svc.Subscription(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domainUser.TierFree, sub.Tier)
	assert.False(t, sub.IsPremium)
	assert.Equal(t, 0, sub.DeepDivesRemaining)
}

func TestService_UpgradeToPro(t *testing.T) {
	reset := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("free user is upgraded", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Get(mock.Anything, "u1").Return(&domainUser.User{ID: "u1", SubscriptionTier: domainUser.TierFree}, nil).Once()
		repo.EXPECT().UpgradeToPro(mock.Anything, "u1", domainUser.ProDeepDives).Return(nil)
		repo.EXPECT().Get(mock.Anything, "u1").Return(&domainUser.User{
			ID: "u1", SubscriptionTier: domainUser.TierPro, DeepDivesRemaining: domainUser.ProDeepDives, DeepDiveResetDate: &reset,
		}, nil).Once()

		up, err := svc.UpgradeToPro(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, "Successfully upgraded to PRO", up.Message)
		assert.True(t, up.IsPremium)
		assert.Equal(t, 20, up.DeepDivesRemaining)
		assert.Equal(t, &reset, up.DeepDiveResetDate)
	})

	t.Run("pro user keeps quota", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Get(mock.Anything, "u1").Return(&domainUser.User{ID: "u1", SubscriptionTier: domainUser.TierPro, DeepDivesRemaining: 3}, nil)

		up, err := svc.UpgradeToPro(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, "Already a PRO user", up.Message)
		assert.Equal(t, 3, up.DeepDivesRemaining)
	})
}
