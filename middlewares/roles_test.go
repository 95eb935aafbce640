package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func invokeWithRole(t *testing.T, mw echo.MiddlewareFunc, role string) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(CtxRole, role)
	}

	reached := false
	err := mw(func(echo.Context) error {
		reached = true
		return nil
	})(c)
	if err == nil {
		return http.StatusOK, reached
	}
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("unexpected error type: %v", err)
	}
	return he.Code, reached
}

func TestRequireRole(t *testing.T) {
	staff := RequireRole(RoleAdmin, RoleTeacher)

	code, reached := invokeWithRole(t, staff, RoleAdmin)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, reached)

	code, reached = invokeWithRole(t, staff, RoleTeacher)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, reached)

	code, reached = invokeWithRole(t, staff, RoleStudent)
	assert.Equal(t, http.StatusForbidden, code)
	assert.False(t, reached, "denied request must never reach the handler")

	// no role in context at all
	code, reached = invokeWithRole(t, staff, "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.False(t, reached)
}

func TestRequireRoleCaseInsensitive(t *testing.T) {
	admin := RequireRole("Admin")

	code, reached := invokeWithRole(t, admin, "admin")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, reached)

	code, _ = invokeWithRole(t, admin, "ADMIN")
	assert.Equal(t, http.StatusOK, code)
}
