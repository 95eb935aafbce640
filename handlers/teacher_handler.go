package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

type TeacherHandler struct{}

func NewTeacherHandler() *TeacherHandler { return &TeacherHandler{} }

type teacherPayload struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Department string `json:"department" validate:"required"`
	Password   string `json:"password"` // required on create, optional on update
}

func (p *teacherPayload) normalize() {
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.Department = strings.TrimSpace(p.Department)
	p.Password = strings.TrimSpace(p.Password)
}

// GET /teachers
func (h *TeacherHandler) List(c echo.Context) error {
	tx := db(c).Model(&models.Teacher{})
	if dep := strings.TrimSpace(c.QueryParam("department")); dep != "" {
		tx = tx.Where("department = ?", dep)
	}
	var items []models.Teacher
	if err := tx.Order("id ASC").Find(&items).Error; err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, items)
}

// POST /teachers
func (h *TeacherHandler) Create(c echo.Context) error {
	var p teacherPayload
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
	t := models.Teacher{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Department:   p.Department,
		PasswordHash: string(hash),
	}
	if err := db(c).Create(&t).Error; err != nil {
		return storeError(c)
	}
	return jsonOK(c, map[string]any{"message": "Teacher added successfully", "id": t.ID})
}

// PUT /teachers/:id
func (h *TeacherHandler) Update(c echo.Context) error {
	var p teacherPayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	updates := map[string]any{
		"name":       p.Name,
		"email":      p.Email,
		"phone":      p.Phone,
		"department": p.Department,
	}
	if p.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
		if err != nil {
			return storeError(c)
		}
		updates["password_hash"] = string(hash)
	}

	res := db(c).Model(&models.Teacher{}).Where("id = ?", c.Param("id")).Updates(updates)
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, nil)
}

// DELETE /teachers/:id
func (h *TeacherHandler) Delete(c echo.Context) error {
	res := db(c).Delete(&models.Teacher{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, nil)
}
