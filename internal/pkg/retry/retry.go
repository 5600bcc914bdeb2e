package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/tumpangan/liveride/internal/pkg/logger"
)

// Config holds retry configuration
type Config struct {
	MaxRetries int              // Maximum number of retry attempts
	BaseDelay  time.Duration    // Base delay between retries
	MaxDelay   time.Duration    // Maximum delay between retries
	Multiplier float64          // Exponential backoff multiplier
	Jitter     bool             // Add randomization to avoid thundering herd
	Retryable  func(error) bool // Reports whether an error is worth retrying
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		Retryable:  func(err error) bool { return err != nil },
	}
}

// Retrier executes functions with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a new retrier
func New(config Config, l *logger.ZapLogger) *Retrier {
	if config.Retryable == nil {
		config.Retryable = func(err error) bool { return err != nil }
	}
	return &Retrier{
		config: config,
		logger: l,
	}
}

// Execute runs fn until it succeeds, the retry budget runs out, or the
// context is done
func (r *Retrier) Execute(ctx context.Context, fn func(context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !r.config.Retryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)
		if r.logger != nil {
			r.logger.Debug("Operation failed, retrying",
				logger.Err(err),
				logger.Int("attempt", attempt+1),
				logger.Duration("delay", delay))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
