package jwt

import (
	"testing"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/config"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerWithSecret(secret string) Manager {
	return NewJwtManager(&config.AuthConfig{SecretKey: secret, TokenTTL: time.Hour})
}

func signTokenWithSecret(secret string, claims jwtlib.Claims) (string, error) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func TestCreateToken_AndDecode_Success(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")

	token, err := mgr.CreateToken("user_1", "a@b.io")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.UserID)
	assert.Equal(t, "a@b.io", claims.UserEmail)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestCreateToken_RequiresUser(t *testing.T) {
	_, err := newManagerWithSecret("s").CreateToken("", "")
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestDecodeToken_Failures(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		claims *Claims
		want   error
	}{
		{
			name:   "signed with another secret",
			secret: "other-secret",
			claims: &Claims{UserID: "u"},
			want:   ErrInvalidToken,
		},
		{
			name:   "expired",
			secret: "test-secret",
			claims: &Claims{UserID: "u", RegisteredClaims: jwtlib.RegisteredClaims{
				ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
			}},
			want: ErrExpiredToken,
		},
		{
			name:   "no user",
			secret: "test-secret",
			claims: &Claims{},
			want:   ErrMissingUser,
		},
	}

	mgr := newManagerWithSecret("test-secret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := signTokenWithSecret(tt.secret, tt.claims)
			require.NoError(t, err)

			claims, err := mgr.DecodeToken(signed)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeToken_SubjectFallback(t *testing.T) {
	signed, err := signTokenWithSecret("test-secret", &Claims{RegisteredClaims: jwtlib.RegisteredClaims{Subject: "user_9"}})
	require.NoError(t, err)

	claims, err := newManagerWithSecret("test-secret").DecodeToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user_9", claims.UserID)
}

func TestDecodeToken_Garbage(t *testing.T) {
	_, err := newManagerWithSecret("s").DecodeToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
