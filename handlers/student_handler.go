package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

type studentPayload struct {
	Name       string `json:"name" validate:"required"`
	Roll       string `json:"roll" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Department string `json:"department" validate:"required"`
	Year       string `json:"year" validate:"required"`
	Password   string `json:"password"` // required on create, optional on update
}

func (p *studentPayload) normalize() {
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.Roll = strings.TrimSpace(p.Roll)
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.Department = strings.TrimSpace(p.Department)
	p.Year = canonicalYear(strings.TrimSpace(p.Year))
	p.Password = strings.TrimSpace(p.Password)
}

// GET /students?department=&year=
func (h *StudentHandler) List(c echo.Context) error {
	tx := db(c).Model(&models.Student{})
	if dep := strings.TrimSpace(c.QueryParam("department")); dep != "" {
		tx = tx.Where("department = ?", dep)
	}
	if year := strings.TrimSpace(c.QueryParam("year")); year != "" {
		tx = tx.Where("TRIM(LOWER(year)) = ?", strings.ToLower(canonicalYear(year)))
	}

	var items []models.Student
	if err := tx.Order("id ASC").Find(&items).Error; err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, items)
}

// POST /students
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil || p.Password == "" {
		return missingFields(c)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return storeError(c)
	}
	s := models.Student{
		Name:         p.Name,
		Roll:         p.Roll,
		Email:        p.Email,
		Department:   p.Department,
		Year:         p.Year,
		PasswordHash: string(hash),
	}
	if err := db(c).Create(&s).Error; err != nil {
		return storeError(c)
	}
	return jsonOK(c, map[string]any{"message": "Student added successfully", "id": s.ID})
}

// PUT /students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	updates := map[string]any{
		"name":       p.Name,
		"roll":       p.Roll,
		"email":      p.Email,
		"department": p.Department,
		"year":       p.Year,
	}
	// blank password keeps the stored hash untouched
	if p.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
		if err != nil {
			return storeError(c)
		}
		updates["password_hash"] = string(hash)
	}

	res := db(c).Model(&models.Student{}).Where("id = ?", c.Param("id")).Updates(updates)
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, map[string]any{"message": "Student updated successfully"})
}

// DELETE /students/:id
// Marks and attendance rows referencing this student are left in place
// (weak reference, no cascade).
func (h *StudentHandler) Delete(c echo.Context) error {
	res := db(c).Delete(&models.Student{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, map[string]any{"message": "Student deleted successfully"})
}
