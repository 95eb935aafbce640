package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys populated by RequireAuth. Handlers must authorize against
// these verified values, never against anything the client asserts directly.
const (
	CtxUserID = "auth.sub"
	CtxRole   = "auth.role"
	CtxName   = "auth.name"
	CtxEmail  = "auth.email"
)

// Claims as signed by the login handler.
type Claims struct {
	Sub   uint   `json:"sub"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"success": false, "message": "Missing authorization header"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid authorization header"})
	}
	return parts[1], nil
}

// RequireAuth verifies the HS256 token and attaches the claims to the context.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			token, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
				// reject alg swapping
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid token"})
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid token"})
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid token"})
			}
			if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"success": false, "message": "Token expired"})
			}
			c.Set(CtxUserID, claims.Sub)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxName, claims.Name)
			c.Set(CtxEmail, claims.Email)
			return next(c)
		}
	}
}
