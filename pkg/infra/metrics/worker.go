package metrics

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/events"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	defaultQueueSize = 1000
	publishTimeout   = 10 * time.Second
)

//go:generate mockery --name=Worker --dir=. --output=./mocks --filename=worker_mock.go --case=underscore --with-expecter

// Worker records run metrics and publishes run events off the request path.
type Worker interface {
	Shutdown()
	StartWorkers(n int)
	Process(evt *events.Event, elapsed time.Duration)
	RecordRequest(method, route string, status int, elapsed time.Duration)
}

type worker struct {
	logger   *logrus.Logger
	emitter  events.Emitter
	taskChan chan func()
	ctx      context.Context
	cancel   context.CancelFunc
	closed   atomic.Bool
}

func NewWorker(logger *logrus.Logger, emitter events.Emitter) Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &worker{
		logger:   logger,
		emitter:  emitter,
		taskChan: make(chan func(), defaultQueueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (m *worker) Shutdown() {
	if m.closed.Swap(true) {
		return
	}
	m.logger.Info("shutting down metrics workers")
	m.cancel()
	close(m.taskChan)
	m.logger.Info("metrics workers stopped")
}

func (m *worker) Process(evt *events.Event, elapsed time.Duration) {
	m.enqueueTask(func() {
		m.registryRunToPrometheus(evt, elapsed)
	}, evt.RunID)

	if m.emitter == nil {
		return
	}
	m.enqueueTask(func() {
		ctx, cancel := context.WithTimeout(m.ctx, publishTimeout)
		defer cancel()
		if err := m.emitter.Publish(ctx, evt); err != nil {
			m.logger.WithError(err).WithFields(logrus.Fields{
				"run_id": evt.RunID,
				"event":  evt.Type,
			}).Warn("failed to publish analysis event")
		}
	}, evt.RunID)
}

func (m *worker) RecordRequest(method, route string, status int, elapsed time.Duration) {
	m.enqueueTask(func() {
		prometheus.RequestTotal.WithLabelValues(method, route, StatusClass(status)).Inc()
		if prometheus.Config.EnableLatency {
			prometheus.RequestLatency.WithLabelValues(route).Observe(float64(elapsed.Milliseconds()))
		}
	}, route)
}

func (m *worker) registryRunToPrometheus(evt *events.Event, elapsed time.Duration) {
	deep := strconv.FormatBool(evt.IsDeepDive)
	prometheus.AnalysisTotal.WithLabelValues(evt.Verdict, deep).Inc()
	prometheus.AnalysisLatency.WithLabelValues(deep).Observe(float64(elapsed.Milliseconds()))
	prometheus.Cookedness.Observe(float64(evt.Cookedness))
	if prometheus.Config.EnableFlags {
		for _, f := range evt.Flags {
			prometheus.FlagTotal.WithLabelValues(f).Inc()
		}
	}
}

func (m *worker) StartWorkers(n int) {
	m.logger.WithField("workers", n).Info("starting metrics workers")
	for i := 0; i < n; i++ {
		go func() {
			for {
				select {
				case task, ok := <-m.taskChan:
					if !ok {
						return
					}
					task()
				case <-m.ctx.Done():
					return
				}
			}
		}()
	}
}

func (m *worker) enqueueTask(task func(), key string) {
	if m.closed.Load() {
		return
	}
	select {
	case m.taskChan <- task:
	default:
		m.logger.WithField("key", key).Warn("taskChan is full, dropping metrics task")
	}
}

// StatusClass buckets an HTTP status as "2xx", "4xx" and so on.
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "5xx"
	}
	return fmt.Sprintf("%dxx", status/100)
}
