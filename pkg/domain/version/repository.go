package version

import "context"

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=version_repository_mock.go --case=underscore --with-expecter

type Repository interface {
	// Create assigns the next version_number under the case and stores v.
	Create(ctx context.Context, v *Version) error
	Get(ctx context.Context, id string) (*Version, error)
	// ListByCase returns versions ordered by version_number; desc selects newest first.
	ListByCase(ctx context.Context, caseID string, desc bool) ([]Version, error)
	Latest(ctx context.Context, caseID string) (*Version, error)
}
