package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Name:             "test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 3,
		SuccessThreshold: 2,
	}
}

func failing(ctx context.Context) error    { return errors.New("boom") }
func succeeding(ctx context.Context) error { return nil }

func TestBreaker_StaysClosedBelowThreshold(t *testing.T) {
	cb := New(testConfig(), nil)

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), failing)
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(2), cb.Counts().ConsecutiveFailures)
}

func TestBreaker_TripsOpenAtThreshold(t *testing.T) {
	cb := New(testConfig(), nil)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), failing)
	}

	assert.Equal(t, StateOpen, cb.State())

	// Short-circuits without invoking the wrapped function
	invoked := false
	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		invoked = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, invoked)
}

func TestBreaker_HalfOpenAfterCooldownThenCloses(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRequests = 2
	cb := New(cfg, nil)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), failing)
	}
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	// First trial call allowed through
	err := cb.Execute(context.Background(), succeeding)
	assert.NoError(t, err)
	assert.Equal(t, StateHalfOpen, cb.State())

	err = cb.Execute(context.Background(), succeeding)
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig(), nil)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), failing)
	}
	time.Sleep(60 * time.Millisecond)

	_ = cb.Execute(context.Background(), failing)
	assert.Equal(t, StateOpen, cb.State())
}

func TestBreaker_HalfOpenLimitsConcurrentTrials(t *testing.T) {
	cfg := testConfig()
	cb := New(cfg, nil)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), failing)
	}
	time.Sleep(60 * time.Millisecond)

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = cb.Execute(context.Background(), func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	err := cb.Execute(context.Background(), succeeding)
	assert.ErrorIs(t, err, ErrTooManyRequests)
	close(release)
}

func TestBreaker_CallTimeoutCountsAsFailure(t *testing.T) {
	cfg := testConfig()
	cfg.CallTimeout = 20 * time.Millisecond
	cfg.FailureThreshold = 1
	cb := New(cfg, nil)

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StateOpen, cb.State())
}

func TestBreaker_SuccessResetsFailureStreak(t *testing.T) {
	cb := New(testConfig(), nil)

	_ = cb.Execute(context.Background(), failing)
	_ = cb.Execute(context.Background(), failing)
	_ = cb.Execute(context.Background(), succeeding)
	_ = cb.Execute(context.Background(), failing)
	_ = cb.Execute(context.Background(), failing)

	assert.Equal(t, StateClosed, cb.State())
}
