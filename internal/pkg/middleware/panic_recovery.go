package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/tumpangan/liveride/internal/pkg/logger"
	"github.com/tumpangan/liveride/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with stack traces
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					zapLogger.Error("Panic recovered",
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("stack", string(debug.Stack())),
						logger.Err(err))

					if !c.Response().Committed {
						_ = utils.InternalServerErrorResponse(c, "INTERNAL_ERROR", "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}
