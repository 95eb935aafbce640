package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

type CourseHandler struct{}

func NewCourseHandler() *CourseHandler { return &CourseHandler{} }

type coursePayload struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Credits    string `json:"credits" validate:"required"`
	Year       string `json:"year" validate:"required"`
}

func (p *coursePayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Department = strings.TrimSpace(p.Department)
	p.Credits = strings.TrimSpace(p.Credits)
	p.Year = canonicalYear(strings.TrimSpace(p.Year))
}

// GET /courses?department=&year=
func (h *CourseHandler) List(c echo.Context) error {
	tx := db(c).Model(&models.Course{})
	if dep := strings.TrimSpace(c.QueryParam("department")); dep != "" {
		tx = tx.Where("department = ?", dep)
	}
	if year := strings.TrimSpace(c.QueryParam("year")); year != "" {
		tx = tx.Where("TRIM(LOWER(year)) = ?", strings.ToLower(canonicalYear(year)))
	}
	var items []models.Course
	if err := tx.Order("id ASC").Find(&items).Error; err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, items)
}

// POST /courses
func (h *CourseHandler) Create(c echo.Context) error {
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	course := models.Course{Name: p.Name, Department: p.Department, Year: p.Year, Credits: p.Credits}
	if err := db(c).Create(&course).Error; err != nil {
		return storeError(c)
	}
	return jsonOK(c, map[string]any{"id": course.ID})
}

// PUT /courses/:id
func (h *CourseHandler) Update(c echo.Context) error {
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	res := db(c).Model(&models.Course{}).Where("id = ?", c.Param("id")).Updates(map[string]any{
		"name":       p.Name,
		"department": p.Department,
		"year":       p.Year,
		"credits":    p.Credits,
	})
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, nil)
}

// DELETE /courses/:id
func (h *CourseHandler) Delete(c echo.Context) error {
	res := db(c).Delete(&models.Course{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, nil)
}
