package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm/clause"

	"github.com/Ankit-Samanta/college-admin-dashboard/middlewares"
	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

type MarksHandler struct{}

func NewMarksHandler() *MarksHandler { return &MarksHandler{} }

type markPayload struct {
	StudentName string `json:"student_name" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Marks       string `json:"marks" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Year        string `json:"year" validate:"required"`
}

func (p *markPayload) normalize() {
	p.StudentName = strings.Join(strings.Fields(p.StudentName), " ")
	p.Subject = strings.TrimSpace(p.Subject)
	p.Marks = strings.TrimSpace(p.Marks)
	p.Department = strings.TrimSpace(p.Department)
	p.Year = canonicalYear(strings.TrimSpace(p.Year))
}

// GET /marks?department=&year=&subject=
// Stored year labels and caller-supplied filters may differ in case and
// whitespace, so year compares TRIM+LOWER on both sides. A student caller
// is always narrowed to their own rows, whatever filters they send.
func (h *MarksHandler) List(c echo.Context) error {
	tx := db(c).Model(&models.Mark{})

	if dep := strings.TrimSpace(c.QueryParam("department")); dep != "" {
		tx = tx.Where("department = ?", dep)
	}
	if year := strings.TrimSpace(c.QueryParam("year")); year != "" {
		tx = tx.Where("TRIM(LOWER(year)) = ?", strings.ToLower(canonicalYear(year)))
	}
	if subject := strings.TrimSpace(c.QueryParam("subject")); subject != "" {
		tx = tx.Where("subject = ?", subject)
	}

	if callerRole(c) == middlewares.RoleStudent {
		tx = tx.Where("LOWER(student_name) = LOWER(?)", callerName(c))
	}

	var rows []models.Mark
	if err := tx.Order("student_name ASC, subject ASC").Find(&rows).Error; err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /marks/students?department=&year=
// Roster for the marks-entry table.
func (h *MarksHandler) Students(c echo.Context) error {
	dep := strings.TrimSpace(c.QueryParam("department"))
	year := strings.TrimSpace(c.QueryParam("year"))
	if dep == "" || year == "" {
		return c.JSON(http.StatusOK, []models.Student{})
	}

	var rows []models.Student
	err := db(c).Model(&models.Student{}).
		Select("id, name, department, year").
		Where("department = ? AND TRIM(LOWER(year)) = ?", dep, strings.ToLower(canonicalYear(year))).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /marks
// Upsert on the natural key (student_name, subject, department, year):
// saving the same mark twice replaces marks only and never duplicates the
// row.
func (h *MarksHandler) Upsert(c echo.Context) error {
	var p markPayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	m := models.Mark{
		StudentName: p.StudentName,
		Subject:     p.Subject,
		Marks:       p.Marks,
		Department:  p.Department,
		Year:        p.Year,
	}
	err := db(c).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_name"}, {Name: "subject"}, {Name: "department"}, {Name: "year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"marks", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return storeError(c)
	}
	return jsonOK(c, map[string]any{"message": "Marks saved successfully"})
}
