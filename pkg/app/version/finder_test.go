package version_test

import (
	"context"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/app/version"
	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/NeuralTrust/TrustDrift/pkg/domain/evalcase"
	caseMocks "github.com/NeuralTrust/TrustDrift/pkg/domain/evalcase/mocks"
	domainVersion "github.com/NeuralTrust/TrustDrift/pkg/domain/version"
	versionMocks "github.com/NeuralTrust/TrustDrift/pkg/domain/version/mocks"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/insights"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupFinder(t *testing.T) (version.Finder, *versionMocks.Repository, *caseMocks.Repository) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	versions := versionMocks.NewRepository(t)
	cases := caseMocks.NewRepository(t)
	return version.NewFinder(logger, versions, cases), versions, cases
}

func TestFinder_Get(t *testing.T) {
	t.Run("member can read", func(t *testing.T) {
		f, versions, cases := setupFinder(t)
		versions.EXPECT().Get(mock.Anything, "ver_1").Return(&domainVersion.Version{ID: "ver_1", CaseID: "case_1"}, nil)
		cases.EXPECT().GetForUser(mock.Anything, "case_1", "m1").Return(&evalcase.Case{ID: "case_1"}, nil)

		v, err := f.Get(context.Background(), "ver_1", "m1")
		require.NoError(t, err)
		assert.Equal(t, "ver_1", v.ID)
	})

	t.Run("stranger is denied without data", func(t *testing.T) {
		f, versions, cases := setupFinder(t)
		versions.EXPECT().Get(mock.Anything, "ver_1").Return(&domainVersion.Version{ID: "ver_1", CaseID: "case_1"}, nil)
		cases.EXPECT().GetForUser(mock.Anything, "case_1", "x").Return(nil, domain.NewAccessDeniedError("case", "case_1"))

		v, err := f.Get(context.Background(), "ver_1", "x")
		assert.Nil(t, v)
		assert.True(t, domain.IsAccessDeniedError(err))
	})

	t.Run("missing version", func(t *testing.T) {
		f, versions, _ := setupFinder(t)
		versions.EXPECT().Get(mock.Anything, "ver_9").Return(nil, domain.NewNotFoundError("version", "ver_9"))

		_, err := f.Get(context.Background(), "ver_9", "u1")
		assert.True(t, domain.IsNotFoundError(err))
	})
}

func TestFinder_List(t *testing.T) {
	f, versions, cases := setupFinder(t)
	cases.EXPECT().GetForUser(mock.Anything, "case_1", "u1").Return(&evalcase.Case{ID: "case_1"}, nil)
	versions.EXPECT().ListByCase(mock.Anything, "case_1", true).Return([]domainVersion.Version{
		{ID: "ver_2", VersionNumber: 2, IsDeepDive: true},
		{ID: "ver_1", VersionNumber: 1},
	}, nil)

	meta, err := f.List(context.Background(), "case_1", "u1")
	require.NoError(t, err)
	require.Len(t, meta, 2)
	assert.Equal(t, "ver_2", meta[0].ID)
	assert.True(t, meta[0].IsDeepDive)
}

func TestFinder_Latest_ChecksAccess(t *testing.T) {
	f, _, cases := setupFinder(t)
	cases.EXPECT().GetForUser(mock.Anything, "case_1", "x").Return(nil, domain.NewNotFoundError("case", "case_1"))

	_, err := f.Latest(context.Background(), "case_1", "x")
	assert.True(t, domain.IsNotFoundError(err))
}

func TestFinder_Trends(t *testing.T) {
	f, versions, cases := setupFinder(t)
	cases.EXPECT().GetForUser(mock.Anything, "case_1", "u1").Return(&evalcase.Case{ID: "case_1"}, nil)
	versions.EXPECT().ListByCase(mock.Anything, "case_1", false).Return([]domainVersion.Version{
		{
			ID: "ver_1", VersionNumber: 1, CookednessScore: 20, Verdict: "Neutral",
			AnalysisResponse: domain.JSONMap{
				"error_novelty": map[string]any{"introduced_errors": []any{}},
				"tradeoff":      map[string]any{"net_effect": "neutral"},
			},
		},
		{
			ID: "ver_2", VersionNumber: 2, CookednessScore: 75, Verdict: "Regression",
			AnalysisResponse: domain.JSONMap{
				"error_novelty": map[string]any{"introduced_errors": []any{"HALLUCINATION"}, "has_new_risk": true},
				"tradeoff":      map[string]any{"net_effect": "unsafe_helpfulness_gain", "helpfulness_delta": 120.0},
			},
		},
		{ID: "ver_3", VersionNumber: 3, CookednessScore: 10, Verdict: "Improved"},
	}, nil)

	trends, err := f.Trends(context.Background(), "case_1", "u1")
	require.NoError(t, err)
	assert.Equal(t, []int{20, 75, 10}, trends.Cookedness)

	require.Len(t, trends.RegressionHistory, 3)
	assert.Equal(t, []string{"HALLUCINATION"}, trends.RegressionHistory[1].IntroducedErrors)
	assert.Equal(t, "Regression", trends.RegressionHistory[1].Verdict)
	assert.Empty(t, trends.RegressionHistory[2].IntroducedErrors)

	assert.Equal(t, insights.NetEffect("unsafe_helpfulness_gain"), trends.Tradeoff[1].NetEffect)
	assert.Equal(t, 3, trends.Tradeoff[2].Version)
	assert.Empty(t, trends.Tradeoff[2].NetEffect)
}
