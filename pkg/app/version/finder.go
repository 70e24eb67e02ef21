// Package version reads stored analysis snapshots and derives per-case trends from them.
package version

import (
	"context"

	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/evalcase"
	domainVersion "github.com/NeuralTrust/TrustDrift/pkg/domain/version"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=version_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	// Get returns the full snapshot when userID owns or shares its case.
	Get(ctx context.Context, id, userID string) (*domainVersion.Version, error)
	List(ctx context.Context, caseID, userID string) ([]domainVersion.Metadata, error)
	Latest(ctx context.Context, caseID, userID string) (*domainVersion.Version, error)
	Trends(ctx context.Context, caseID, userID string) (*Trends, error)
}

type finder struct {
	logger   *logrus.Logger
	versions domainVersion.Repository
	cases    evalcase.Repository
}

func NewFinder(logger *logrus.Logger, versions domainVersion.Repository, cases evalcase.Repository) Finder {
	return &finder{
		logger:   logger,
		versions: versions,
		cases:    cases,
	}
}

func (f *finder) Get(ctx context.Context, id, userID string) (*domainVersion.Version, error) {
	v, err := f.versions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := f.cases.GetForUser(ctx, v.CaseID, userID); err != nil {
		if domain.IsAccessDeniedError(err) || domain.IsNotFoundError(err) {
			f.logger.WithFields(logrus.Fields{"version_id": id, "user_id": userID}).Debug("version read denied")
			return nil, domain.NewAccessDeniedError("version", id)
		}
		return nil, err
	}
	return v, nil
}

func (f *finder) List(ctx context.Context, caseID, userID string) ([]domainVersion.Metadata, error) {
	if _, err := f.cases.GetForUser(ctx, caseID, userID); err != nil {
		return nil, err
	}
	versions, err := f.versions.ListByCase(ctx, caseID, true)
	if err != nil {
		return nil, err
	}
	out := make([]domainVersion.Metadata, len(versions))
	for i := range versions {
		out[i] = versions[i].Meta()
	}
	return out, nil
}

func (f *finder) Latest(ctx context.Context, caseID, userID string) (*domainVersion.Version, error) {
	if _, err := f.cases.GetForUser(ctx, caseID, userID); err != nil {
		return nil, err
	}
	return f.versions.Latest(ctx, caseID)
}

func (f *finder) Trends(ctx context.Context, caseID, userID string) (*Trends, error) {
	if _, err := f.cases.GetForUser(ctx, caseID, userID); err != nil {
		return nil, err
	}
	versions, err := f.versions.ListByCase(ctx, caseID, false)
	if err != nil {
		return nil, err
	}
	return buildTrends(f.logger, versions), nil
}
