package evalcase

import "context"

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=case_repository_mock.go --case=underscore --with-expecter

type Repository interface {
	Create(ctx context.Context, c *Case) error
	// GetForUser returns the case when userID owns it or is a member.
	GetForUser(ctx context.Context, id, userID string) (*Case, error)
	// ListForUser returns owned and member cases, newest update first.
	ListForUser(ctx context.Context, userID string) ([]Case, error)
	Update(ctx context.Context, id, ownerID string, name, description *string) (*Case, error)
	Delete(ctx context.Context, id, ownerID string) error
	AddMember(ctx context.Context, m *Member) error
	ListMembers(ctx context.Context, caseID string) ([]Member, error)
}
