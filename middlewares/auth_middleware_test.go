package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const secret = "unit-test-secret"

func signed(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := Claims{
		Sub:  7,
		Role: RoleTeacher,
		Name: "Mr. Smith",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func runAuth(t *testing.T, header string) (int, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequireAuth(secret)(func(echo.Context) error { return nil })(c)
	if err == nil {
		return http.StatusOK, c
	}
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("unexpected error type: %v", err)
	}
	return he.Code, c
}

func TestRequireAuthValidToken(t *testing.T) {
	code, c := runAuth(t, "Bearer "+signed(t, secret, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, uint(7), c.Get(CtxUserID))
	assert.Equal(t, RoleTeacher, c.Get(CtxRole))
	assert.Equal(t, "Mr. Smith", c.Get(CtxName))
}

func TestRequireAuthRejects(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc123",
		"garbage token":  "Bearer not-a-jwt",
		"wrong secret":   "Bearer " + signed(t, "other-secret", time.Now().Add(time.Hour)),
		"expired token":  "Bearer " + signed(t, secret, time.Now().Add(-time.Minute)),
	}
	for name, header := range cases {
		code, _ := runAuth(t, header)
		assert.Equal(t, http.StatusUnauthorized, code, name)
	}
}
