package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const bearerContextKey = "bearerCredential"

// BearerToken extracts the bearer credential from the Authorization header
// and stashes it in the request context. It never rejects: a missing or
// malformed header leaves an empty credential, and the services decide what
// that means for the request. Handlers pass the credential on explicitly
// rather than reading auth state ambiently.
func BearerToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")

			var token string
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
				token = parts[1]
			}

			c.Set(bearerContextKey, token)
			return next(c)
		}
	}
}

// BearerFromContext returns the bearer credential extracted by BearerToken,
// or "" when none was supplied.
func BearerFromContext(c echo.Context) string {
	token, _ := c.Get(bearerContextKey).(string)
	return token
}
