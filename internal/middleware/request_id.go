package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

const HeaderTraceID = "X-Trace-ID"

// RequestID propagates the caller's trace id, falling back to
// X-Request-ID and then a fresh uuid.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			traceID := req.Header.Get(HeaderTraceID)
			if traceID == "" {
				traceID = req.Header.Get(echo.HeaderXRequestID)
			}
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.SetRequest(req.WithContext(logger.WithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(HeaderTraceID, traceID)

			return next(c)
		}
	}
}
