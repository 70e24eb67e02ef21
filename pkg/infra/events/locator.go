package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type LocatorOption func(*Locator)

func WithPublisher(name string, p Publisher) LocatorOption {
	return func(l *Locator) {
		if l.publishers == nil {
			l.publishers = make(map[string]Publisher)
		}
		l.publishers[name] = p
	}
}

// Locator builds configured publishers from registered prototypes.
type Locator struct {
	publishers map[string]Publisher
}

func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{publishers: make(map[string]Publisher)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Locator) Get(sink SinkDTO) (Publisher, error) {
	base, ok := l.publishers[sink.Name]
	if !ok {
		return nil, fmt.Errorf("unknown event sink: %s", sink.Name)
	}
	if err := base.ValidateConfig(sink.Settings); err != nil {
		return nil, err
	}
	return base.WithSettings(sink.Settings)
}

// Fanout publishes to every sink and joins their errors.
type Fanout struct {
	logger *logrus.Logger
	sinks  []Publisher
}

// NewFanout resolves each sink through the locator. Sinks that fail to build are
// logged and skipped so a broken sink never blocks analysis.
func NewFanout(logger *logrus.Logger, locator *Locator, sinks []SinkDTO) *Fanout {
	f := &Fanout{logger: logger}
	for _, s := range sinks {
		p, err := locator.Get(s)
		if err != nil {
			logger.WithError(err).WithField("sink", s.Name).Error("failed to configure event sink")
			continue
		}
		f.sinks = append(f.sinks, p)
	}
	return f
}

func (f *Fanout) Len() int { return len(f.sinks) }

func (f *Fanout) Publish(ctx context.Context, evt *Event) error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.Publish(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (f *Fanout) Close() {
	for _, s := range f.sinks {
		s.Close()
	}
}
