package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Ankit-Samanta/college-admin-dashboard/config"
	"github.com/Ankit-Samanta/college-admin-dashboard/handlers"
	"github.com/Ankit-Samanta/college-admin-dashboard/middlewares"
)

// Register wires all HTTP routes. Role requirements live here, next to the
// paths they protect; every protected group runs RequireAuth first so the
// role checked is always the verified token role.
func Register(e *echo.Echo, cfg *config.Config) {
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	dash := handlers.NewDashboardHandler()
	std := handlers.NewStudentHandler()
	tch := handlers.NewTeacherHandler()
	emp := handlers.NewEmployeeHandler()
	dep := handlers.NewDepartmentHandler()
	crs := handlers.NewCourseHandler()
	lib := handlers.NewLibraryHandler()
	mat := handlers.NewMaterialHandler(cfg.UploadDir)
	mks := handlers.NewMarksHandler()
	att := handlers.NewAttendanceHandler()
	ann := handlers.NewAnnouncementHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/login", auth.Login)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	anyRole := middlewares.RequireRole(middlewares.RoleAdmin, middlewares.RoleTeacher, middlewares.RoleStudent)
	staff := middlewares.RequireRole(middlewares.RoleAdmin, middlewares.RoleTeacher)
	adminOnly := middlewares.RequireRole(middlewares.RoleAdmin)

	// ===== Any authenticated caller =====
	e.GET("/dashboard/counts", dash.Counts, authMW, anyRole)

	e.GET("/teachers", tch.List, authMW, anyRole)
	e.GET("/employees", emp.List, authMW, anyRole)
	e.GET("/departments", dep.List, authMW, anyRole)
	e.GET("/courses", crs.List, authMW, anyRole)
	e.GET("/library", lib.List, authMW, anyRole)
	e.GET("/studymaterials", mat.List, authMW, anyRole)
	e.GET("/announcements", ann.List, authMW, anyRole)

	// marks/attendance reads are open to all roles but row-scoped for students
	e.GET("/marks", mks.List, authMW, anyRole)
	e.GET("/attendance", att.List, authMW, anyRole)

	// ===== Admin + teacher =====
	e.GET("/students", std.List, authMW, staff)
	e.GET("/marks/students", mks.Students, authMW, staff)
	e.GET("/attendance/students", att.Students, authMW, staff)

	e.POST("/marks", mks.Upsert, authMW, staff)
	e.POST("/attendance/bulk", att.BulkUpsert, authMW, staff)

	e.POST("/studymaterials/upload", mat.Upload, authMW, staff)
	e.DELETE("/studymaterials/:id", mat.Delete, authMW, staff)

	e.POST("/announcements", ann.Create, authMW, staff)
	e.PUT("/announcements/:id", ann.Update, authMW, staff)
	e.DELETE("/announcements/:id", ann.Delete, authMW, staff)

	// ===== Admin only =====
	e.POST("/students", std.Create, authMW, adminOnly)
	e.PUT("/students/:id", std.Update, authMW, adminOnly)
	e.DELETE("/students/:id", std.Delete, authMW, adminOnly)

	e.POST("/teachers", tch.Create, authMW, adminOnly)
	e.PUT("/teachers/:id", tch.Update, authMW, adminOnly)
	e.DELETE("/teachers/:id", tch.Delete, authMW, adminOnly)

	e.POST("/employees", emp.Create, authMW, adminOnly)
	e.PUT("/employees/:id", emp.Update, authMW, adminOnly)
	e.DELETE("/employees/:id", emp.Delete, authMW, adminOnly)

	e.POST("/departments", dep.Create, authMW, adminOnly)
	e.PUT("/departments/:id", dep.Update, authMW, adminOnly)
	e.DELETE("/departments/:id", dep.Delete, authMW, adminOnly)

	e.POST("/courses", crs.Create, authMW, adminOnly)
	e.PUT("/courses/:id", crs.Update, authMW, adminOnly)
	e.DELETE("/courses/:id", crs.Delete, authMW, adminOnly)

	e.POST("/library", lib.Create, authMW, adminOnly)
	e.PUT("/library/:id", lib.Update, authMW, adminOnly)
	e.DELETE("/library/:id", lib.Delete, authMW, adminOnly)
}
