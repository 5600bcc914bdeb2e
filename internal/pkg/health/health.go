package health

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tumpangan/liveride/internal/pkg/database"
	"github.com/tumpangan/liveride/internal/pkg/logger"
	natspkg "github.com/tumpangan/liveride/internal/pkg/nats"
)

// Checker verifies that a single dependency is reachable
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error { return f(ctx) }

// Status is the health report for one dependency
type Status struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// Service aggregates dependency health checks
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

// NewService creates a health service
func NewService(l *logger.ZapLogger) *Service {
	return &Service{
		checkers: make(map[string]Checker),
		logger:   l,
	}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Check runs all checkers and reports per-dependency status
func (s *Service) Check(ctx context.Context) (map[string]Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	healthy := true
	results := make(map[string]Status, len(s.checkers))
	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := checker.Check(checkCtx)
		cancel()

		if err != nil {
			healthy = false
			results[name] = Status{Healthy: false, Error: err.Error()}
			if s.logger != nil {
				s.logger.Warn("Dependency health check failed",
					logger.String("dependency", name),
					logger.Err(err))
			}
			continue
		}
		results[name] = Status{Healthy: true}
	}

	return results, healthy
}

// NewPostgresChecker returns a checker for the postgres connection
func NewPostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetDB().PingContext(ctx)
	})
}

// NewRedisChecker returns a checker for the redis connection
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewNATSChecker returns a checker for the NATS connection
func NewNATSChecker(client *natspkg.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return errors.New("nats connection is down")
		}
		return nil
	})
}

// RegisterEndpoints registers the health check endpoints
func RegisterEndpoints(e *echo.Echo, serviceName, version string, service *Service) {
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service":     serviceName,
			"version":     version,
			"server_time": time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		results, healthy := service.Check(c.Request().Context())
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, map[string]interface{}{
			"service":      serviceName,
			"healthy":      healthy,
			"dependencies": results,
		})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
