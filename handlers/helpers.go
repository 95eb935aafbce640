package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Ankit-Samanta/college-admin-dashboard/database"
	"github.com/Ankit-Samanta/college-admin-dashboard/middlewares"
)

var validate = validator.New()

// canonicalYear folds the accepted spellings of a study year onto one
// stored label. Unrecognized input passes through unchanged so legacy
// free-text values keep round-tripping; they will simply never match a
// canonicalized filter.
func canonicalYear(v string) string {
	switch v {
	case "1", "1st":
		return "1st"
	case "2", "2nd":
		return "2nd"
	case "3", "3rd":
		return "3rd"
	case "4", "4th":
		return "4th"
	default:
		return v
	}
}

// db binds the shared gorm handle to the request deadline.
func db(c echo.Context) *gorm.DB {
	return database.Ctx(c.Request().Context())
}

func callerRole(c echo.Context) string {
	role, _ := c.Get(middlewares.CtxRole).(string)
	return role
}

func callerID(c echo.Context) uint {
	id, _ := c.Get(middlewares.CtxUserID).(uint)
	return id
}

func callerName(c echo.Context) string {
	name, _ := c.Get(middlewares.CtxName).(string)
	return name
}

// ---- response envelope ----
// Success responses are {success:true,...} or a bare array for list reads;
// failures are always {success:false, message}.

func jsonOK(c echo.Context, extra map[string]any) error {
	body := map[string]any{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(http.StatusOK, body)
}

func jsonFail(c echo.Context, code int, message string) error {
	return c.JSON(code, map[string]any{"success": false, "message": message})
}

func badPayload(c echo.Context) error {
	return jsonFail(c, http.StatusBadRequest, "Invalid payload")
}

func missingFields(c echo.Context) error {
	return jsonFail(c, http.StatusBadRequest, "All fields are required")
}

func notFound(c echo.Context) error {
	return jsonFail(c, http.StatusNotFound, "Not found")
}

func storeError(c echo.Context) error {
	return jsonFail(c, http.StatusInternalServerError, "Database error")
}
