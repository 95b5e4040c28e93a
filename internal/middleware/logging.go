package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

// Logging writes one access line per request. The level follows the
// response status so that rejected uploads and failed submits stand out.
func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []interface{}{
				"method", req.Method,
				"route", c.Path(),
				"path", req.URL.Path,
				"status", res.Status,
				"bytes", res.Size,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			}
			if user, ok := CurrentUser(c); ok {
				fields = append(fields, "user_id", user.ID)
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				log.Error(req.Context(), "HTTP request", fields...)
			case res.Status >= http.StatusBadRequest:
				log.Warn(req.Context(), "HTTP request", fields...)
			default:
				log.Info(req.Context(), "HTTP request", fields...)
			}
			return nil
		}
	}
}
