package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

const LogPublisherName = "log"

// LogPublisher writes events to the application log.
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Name() string { return LogPublisherName }

func (p *LogPublisher) ValidateConfig(map[string]interface{}) error { return nil }

func (p *LogPublisher) WithSettings(map[string]interface{}) (Publisher, error) { return p, nil }

func (p *LogPublisher) Publish(_ context.Context, evt *Event) error {
	p.logger.WithFields(logrus.Fields{
		"event":         evt.Type,
		"run_id":        evt.RunID,
		"case_id":       evt.CaseID,
		"version":       evt.VersionNumber,
		"verdict":       evt.Verdict,
		"cookedness":    evt.Cookedness,
		"is_deep_dive":  evt.IsDeepDive,
		"ship_decision": evt.ShipDecision,
	}).Info("analysis event")
	return nil
}

func (p *LogPublisher) Close() {}
