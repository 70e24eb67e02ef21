// Package events publishes analysis lifecycle events to configured sinks.
package events

import (
	"context"
	"time"
)

const TypeAnalysisCompleted = "analysis.completed"

type Event struct {
	Type               string    `json:"type"`
	RunID              string    `json:"run_id"`
	UserID             string    `json:"user_id"`
	CaseID             string    `json:"case_id"`
	VersionID          string    `json:"version_id"`
	VersionNumber      int       `json:"version_number"`
	Verdict            string    `json:"verdict"`
	ShipDecision       string    `json:"ship_decision"`
	DeterministicScore int       `json:"deterministic_score"`
	Cookedness         int       `json:"cookedness"`
	Flags              []string  `json:"flags"`
	IsDeepDive         bool      `json:"is_deep_dive"`
	Provider           string    `json:"provider"`
	CreatedAt          time.Time `json:"created_at"`
}

//go:generate mockery --name=Emitter --dir=. --output=./mocks --filename=emitter_mock.go --case=underscore --with-expecter

// Emitter is what the analysis pipeline publishes through.
type Emitter interface {
	Publish(ctx context.Context, evt *Event) error
}

// Publisher is a named sink that is configured from settings.
type Publisher interface {
	Name() string
	ValidateConfig(settings map[string]interface{}) error
	WithSettings(settings map[string]interface{}) (Publisher, error)
	Publish(ctx context.Context, evt *Event) error
	Close()
}

type SinkDTO struct {
	Name     string                 `json:"name" mapstructure:"name"`
	Settings map[string]interface{} `json:"settings" mapstructure:"settings"`
}
