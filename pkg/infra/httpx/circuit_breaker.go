package httpx

import (
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

const halfOpenRequests = 5

type CircuitBreaker interface {
	Execute(fn func() error) error
	Name() string
}

type circuitBreakerWrapper struct {
	breaker *gobreaker.CircuitBreaker
}

// NewCircuitBreaker opens after maxFailures consecutive failures and probes again after timeout.
func NewCircuitBreaker(name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: halfOpenRequests,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	return &circuitBreakerWrapper{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (g *circuitBreakerWrapper) Execute(fn func() error) error {
	_, err := g.breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if err != nil {
		return fmt.Errorf("breaker (%s): %w", g.breaker.Name(), err)
	}
	return nil
}

func (g *circuitBreakerWrapper) Name() string {
	return g.breaker.Name()
}

// BreakerRegistry hands out one breaker per key, created on first use.
type BreakerRegistry struct {
	timeout     time.Duration
	maxFailures uint32
	mu          sync.Mutex
	breakers    map[string]CircuitBreaker
}

func NewBreakerRegistry(timeout time.Duration, maxFailures uint32) *BreakerRegistry {
	return &BreakerRegistry{
		timeout:     timeout,
		maxFailures: maxFailures,
		breakers:    make(map[string]CircuitBreaker),
	}
}

func (r *BreakerRegistry) Get(key string) CircuitBreaker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cb, ok := r.breakers[key]; ok {
		return cb
	}
	cb := NewCircuitBreaker(key, r.timeout, r.maxFailures)
	r.breakers[key] = cb
	return cb
}
