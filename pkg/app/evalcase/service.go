// Package evalcase manages evaluation cases and who can read them.
package evalcase

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	domainCase "github.com/NeuralTrust/TrustDrift/pkg/domain/evalcase"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/user"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/version"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

// Detail is a case together with the metadata of its versions, newest first.
type Detail struct {
	*domainCase.Case
	Versions []version.Metadata `json:"versions"`
}

// MemberView is a member row as shown to collaborators; the owner is listed first.
type MemberView struct {
	domainCase.Member
	IsOwner bool `json:"is_owner"`
}

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=case_service_mock.go --case=underscore --with-expecter
type Service interface {
	Create(ctx context.Context, req *request.CreateCaseRequest) (*domainCase.Case, error)
	List(ctx context.Context, userID string) ([]domainCase.Case, error)
	Get(ctx context.Context, id, userID string) (*Detail, error)
	Update(ctx context.Context, id, userID string, req *request.UpdateCaseRequest) (*domainCase.Case, error)
	Delete(ctx context.Context, id, userID string) error
	AddMember(ctx context.Context, caseID, ownerID string, req *request.AddMemberRequest) (*domainCase.Member, error)
	Members(ctx context.Context, caseID, userID string) ([]MemberView, error)
}

type service struct {
	logger   *logrus.Logger
	cases    domainCase.Repository
	versions version.Repository
	users    user.Repository
}

func NewService(
	logger *logrus.Logger,
	cases domainCase.Repository,
	versions version.Repository,
	users user.Repository,
) Service {
	return &service{
		logger:   logger,
		cases:    cases,
		versions: versions,
		users:    users,
	}
}

func (s *service) Create(ctx context.Context, req *request.CreateCaseRequest) (*domainCase.Case, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c := &domainCase.Case{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.cases.Create(ctx, c); err != nil {
		s.logger.WithError(err).Error("failed to create case")
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return c, nil
}

func (s *service) List(ctx context.Context, userID string) ([]domainCase.Case, error) {
	cases, err := s.cases.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cases == nil {
		cases = []domainCase.Case{}
	}
	return cases, nil
}

func (s *service) Get(ctx context.Context, id, userID string) (*Detail, error) {
	c, err := s.cases.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	versions, err := s.versions.ListByCase(ctx, id, true)
	if err != nil {
		return nil, err
	}
	meta := make([]version.Metadata, len(versions))
	for i := range versions {
		meta[i] = versions[i].Meta()
	}
	return &Detail{Case: c, Versions: meta}, nil
}

func (s *service) Update(ctx context.Context, id, userID string, req *request.UpdateCaseRequest) (*domainCase.Case, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.cases.Update(ctx, id, userID, req.Name, req.Description)
}

func (s *service) Delete(ctx context.Context, id, userID string) error {
	if err := s.cases.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"case_id": id, "user_id": userID}).Info("case deleted")
	return nil
}

// AddMember is reserved to the owner. Adding the owner or an existing member is rejected.
func (s *service) AddMember(ctx context.Context, caseID, ownerID string, req *request.AddMemberRequest) (*domainCase.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := s.cases.GetForUser(ctx, caseID, ownerID)
	if err != nil {
		return nil, err
	}
	if !c.IsOwner(ownerID) {
		return nil, domain.NewAccessDeniedError("case", caseID)
	}
	if c.IsOwner(req.UserID) {
		return nil, fmt.Errorf("%w: the owner cannot be added as a member", domain.ErrInvalidInput)
	}
	members, err := s.cases.ListMembers(ctx, caseID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.UserID == req.UserID {
			return nil, fmt.Errorf("%w: user is already a member", domain.ErrInvalidInput)
		}
	}

	m := &domainCase.Member{
		CaseID:      caseID,
		UserID:      req.UserID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		AddedBy:     ownerID,
	}
	if err := s.cases.AddMember(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return m, nil
}

func (s *service) Members(ctx context.Context, caseID, userID string) ([]MemberView, error) {
	c, err := s.cases.GetForUser(ctx, caseID, userID)
	if err != nil {
		return nil, err
	}

	owner := domainCase.Member{
		ID:      "owner_" + c.UserID,
		CaseID:  c.ID,
		UserID:  c.UserID,
		Role:    domainCase.RoleOwner,
		AddedBy: c.UserID,
		AddedAt: c.CreatedAt,
	}
	u, err := s.users.Get(ctx, c.UserID)
	switch {
	case err == nil:
		owner.Email = u.Email
		owner.DisplayName = u.DisplayName
	case errors.As(err, new(*domain.NotFoundError)):
		s.logger.WithField("user_id", c.UserID).Warn("case owner has no user record")
	default:
		return nil, err
	}

	members, err := s.cases.ListMembers(ctx, caseID)
	if err != nil {
		return nil, err
	}
	out := make([]MemberView, 0, len(members)+1)
	out = append(out, MemberView{Member: owner, IsOwner: true})
	for _, m := range members {
		out = append(out, MemberView{Member: m})
	}
	return out, nil
}
