package user_test

import (
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestUser_APIKeyPreview(t *testing.T) {
	assert.Equal(t, "", (&user.User{}).APIKeyPreview())
	assert.Equal(t, "gsk_abcd...", (&user.User{APIKey: "gsk_abcdefghijkl"}).APIKeyPreview())
	assert.Equal(t, "short...", (&user.User{APIKey: "short"}).APIKeyPreview())
}

func TestUser_IsPremium(t *testing.T) {
	assert.True(t, (&user.User{SubscriptionTier: user.TierPro}).IsPremium())
	assert.False(t, (&user.User{SubscriptionTier: user.TierFree}).IsPremium())
}
