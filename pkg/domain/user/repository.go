package user

import "context"

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=user_repository_mock.go --case=underscore --with-expecter

type Repository interface {
	// GetOrCreate returns the user, creating it on first sight and touching last_login otherwise.
	GetOrCreate(ctx context.Context, id, email, displayName string) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	UpdateAPIKey(ctx context.Context, id, apiKey string) error
	Stats(ctx context.Context, id string) (Stats, error)
	UpgradeToPro(ctx context.Context, id string, deepDives int) error
	// DecrementDeepDive atomically consumes one deep dive and returns what is left.
	DecrementDeepDive(ctx context.Context, id string) (int, error)
}
