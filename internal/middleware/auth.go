package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

const (
	contextUserKey  = "auth_user"
	contextTokenKey = "auth_token"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// RequireAuth resolves the bearer token to a user and rejects the request
// with 401 otherwise.
func RequireAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.TrimSpace(authHeader) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "no token provided",
				})
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid authorization header",
				})
			}
			token := strings.TrimSpace(parts[1])

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": domain.ErrUnauthenticated.Error(),
				})
			}

			ctx := logger.WithUserID(c.Request().Context(), user.ID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(contextUserKey, user)
			c.Set(contextTokenKey, token)

			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(contextUserKey).(*domain.User)
	return user, ok && user != nil
}

func BearerToken(c echo.Context) string {
	token, _ := c.Get(contextTokenKey).(string)
	return token
}
