package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/rare-disease-dx/internal/domain"
)

// BreakerConfig configures the circuit breaker around a Store.
type BreakerConfig struct {
	MaxFailures uint32
	Timeout     time.Duration
}

// BreakerStore stops hammering a failing slot (full disk, locked database)
// once MaxFailures consecutive operations have failed. While open, every call
// fails fast with domain.ErrStoreUnavailable.
type BreakerStore struct {
	inner          Store
	circuitBreaker *gobreaker.CircuitBreaker
}

// NewBreakerStore wraps inner.
func NewBreakerStore(inner Store, config BreakerConfig, logger *logrus.Logger) *BreakerStore {
	if config.MaxFailures == 0 {
		config.MaxFailures = 5
	}

	cbSettings := gobreaker.Settings{
		Name:        "SnapshotStore",
		MaxRequests: 1,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrSnapshotAbsent)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"circuit_breaker": name,
				"from_state":      from,
				"to_state":        to,
			}).Warn("Circuit breaker state changed")
		},
	}

	return &BreakerStore{
		inner:          inner,
		circuitBreaker: gobreaker.NewCircuitBreaker(cbSettings),
	}
}

// State reports the breaker state.
func (b *BreakerStore) State() gobreaker.State {
	return b.circuitBreaker.State()
}

func (b *BreakerStore) Put(ctx context.Context, data []byte) error {
	_, err := b.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, b.inner.Put(ctx, data)
	})
	return b.wrap(err)
}

func (b *BreakerStore) Get(ctx context.Context) ([]byte, error) {
	result, err := b.circuitBreaker.Execute(func() (interface{}, error) {
		return b.inner.Get(ctx)
	})
	if err != nil {
		return nil, b.wrap(err)
	}
	data, _ := result.([]byte)
	return data, nil
}

func (b *BreakerStore) Delete(ctx context.Context) error {
	_, err := b.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, b.inner.Delete(ctx)
	})
	return b.wrap(err)
}

func (b *BreakerStore) Close() error {
	return b.inner.Close()
}

func (b *BreakerStore) wrap(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}
