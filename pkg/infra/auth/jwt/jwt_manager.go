package jwt

import (
	"errors"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrMissingUser  = errors.New("token carries no user")
)

//go:generate mockery --name=Manager --dir=. --output=mocks/ --filename=jwt_manager_mock.go --case=underscore --with-expecter
type (
	Manager interface {
		CreateToken(userID, email string) (string, error)
		// DecodeToken verifies signature and expiry and returns the caller's claims.
		DecodeToken(tokenString string) (*Claims, error)
	}
	manager struct {
		config *config.AuthConfig
		now    func() time.Time
	}
)

func NewJwtManager(config *config.AuthConfig) Manager {
	return &manager{
		config: config,
		now:    time.Now,
	}
}

type Claims struct {
	UserID    string `json:"user_id,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	jwt.RegisteredClaims
}

func (m *manager) CreateToken(userID, email string) (string, error) {
	if userID == "" {
		return "", ErrMissingUser
	}
	issued := m.now()
	claims := &Claims{
		UserID:    userID,
		UserEmail: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			IssuedAt: jwt.NewNumericDate(issued),
		},
	}
	if m.config.TokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issued.Add(m.config.TokenTTL))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.SecretKey))
}

func (m *manager) DecodeToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(m.config.SecretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, ErrMissingUser
	}
	return claims, nil
}
