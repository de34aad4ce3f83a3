package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a handler panic into a SYSTEM_001 response instead
// of letting it tear down the connection. The stack is logged with the trace
// ID so the payload stays generic while the log line stays actionable.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("Recovered from panic",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
					"stack_trace", string(debug.Stack()),
				)

				resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, resp); err != nil {
					slog.Error("Failed to write panic response",
						"trace_id", traceID,
						"error", err.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
