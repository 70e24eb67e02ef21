package analysis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/app/analysis"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/fetcher"
	fetcherMocks "github.com/NeuralTrust/TrustDrift/pkg/infra/fetcher/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func testTargets() analysis.Targets {
	return analysis.Targets{
		OldURL:       "http://old.local/chat",
		NewURL:       "http://new.local/chat",
		Headers:      map[string]string{"Authorization": "Bearer t"},
		BodyTemplate: map[string]any{"prompt": "{{question}} ({{tone}})"},
		Variables:    map[string]any{"tone": "formal"},
		ResponsePath: "answer",
	}
}

func TestCollector_Collect(t *testing.T) {
	f := fetcherMocks.NewFetcher(t)
	c := analysis.NewCollector(testLogger(), f, 0)
	targets := testTargets()

	isCall := func(url, question string) any {
		return mock.MatchedBy(func(tg fetcher.Target) bool {
			return tg.URL == url && tg.Variables["question"] == question && tg.Variables["tone"] == "formal" &&
				tg.ResponsePath == "answer" && tg.Headers["Authorization"] == "Bearer t"
		})
	}
	f.EXPECT().Fetch(mock.Anything, isCall(targets.OldURL, "q1")).Return("old one", nil).Once()
	f.EXPECT().Fetch(mock.Anything, isCall(targets.NewURL, "q1")).Return("new one", nil).Once()
	f.EXPECT().Fetch(mock.Anything, isCall(targets.OldURL, "q2")).Return("old two", nil).Once()
	f.EXPECT().Fetch(mock.Anything, isCall(targets.NewURL, "q2")).Return("", &fetcher.StatusError{StatusCode: 502}).Once()

	pairs, err := c.Collect(context.Background(), targets, []string{"q1", "q2"})
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, "q1", pairs[0].Question)
	assert.Equal(t, "old one", pairs[0].Old)
	assert.Equal(t, "new one", pairs[0].New)
	assert.Equal(t, "old two", pairs[1].Old)
	assert.Contains(t, pairs[1].New, "ERROR: ")

	// the shared variables are not mutated per question
	assert.NotContains(t, targets.Variables, "question")
}

func TestCollector_EmptyVariables(t *testing.T) {
	f := fetcherMocks.NewFetcher(t)
	c := analysis.NewCollector(testLogger(), f, 0)
	targets := testTargets()
	targets.Variables = nil

	f.EXPECT().Fetch(mock.Anything, mock.MatchedBy(func(tg fetcher.Target) bool {
		return tg.Variables["question"] == "only"
	})).Return("ok", nil).Twice()

	pairs, err := c.Collect(context.Background(), targets, []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, "ok", pairs[0].New)
}

func TestCollector_CancelledContextAborts(t *testing.T) {
	f := fetcherMocks.NewFetcher(t)
	c := analysis.NewCollector(testLogger(), f, analysis.DefaultThrottle)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pairs, err := c.Collect(ctx, testTargets(), []string{"q1"})
	assert.Nil(t, pairs)
	assert.True(t, errors.Is(err, context.Canceled))
}
