package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/events"
	eventsmocks "github.com/NeuralTrust/TrustDrift/pkg/infra/events/mocks"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/metrics"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestWorker_ProcessPublishesEvent(t *testing.T) {
	emitter := eventsmocks.NewEmitter(t)
	evt := &events.Event{Type: events.TypeAnalysisCompleted, RunID: "run_abcd1234", Verdict: "Regression", Cookedness: 60}

	published := make(chan struct{})
	emitter.EXPECT().Publish(mock.Anything, evt).
		Run(func(_ context.Context, _ *events.Event) { close(published) }).
		Return(errors.New("broker down")).Once()

	w := metrics.NewWorker(newLogger(), emitter)
	w.StartWorkers(2)
	defer w.Shutdown()

	w.Process(evt, 1500*time.Millisecond)

	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
}

func TestWorker_ShutdownIsIdempotent(t *testing.T) {
	w := metrics.NewWorker(newLogger(), nil)
	w.StartWorkers(1)
	w.Shutdown()
	w.Shutdown()
	w.Process(&events.Event{RunID: "late"}, time.Second)
	w.RecordRequest("GET", "/health", 200, time.Millisecond)
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{200: "2xx", 201: "2xx", 404: "4xx", 503: "5xx", 0: "5xx", 999: "5xx"}
	for status, want := range tests {
		assert.Equal(t, want, metrics.StatusClass(status))
	}
}
