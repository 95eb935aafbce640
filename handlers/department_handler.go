package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

type DepartmentHandler struct{}

func NewDepartmentHandler() *DepartmentHandler { return &DepartmentHandler{} }

type departmentPayload struct {
	Name     string `json:"name" validate:"required"`
	Head     string `json:"head" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Strength string `json:"strength" validate:"required"`
}

func (p *departmentPayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Head = strings.Join(strings.Fields(p.Head), " ")
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.Strength = strings.TrimSpace(p.Strength)
}

// GET /departments
func (h *DepartmentHandler) List(c echo.Context) error {
	var items []models.Department
	if err := db(c).Order("id ASC").Find(&items).Error; err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, items)
}

// POST /departments
func (h *DepartmentHandler) Create(c echo.Context) error {
	var p departmentPayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	d := models.Department{Name: p.Name, Head: p.Head, Phone: p.Phone, Email: p.Email, Strength: p.Strength}
	if err := db(c).Create(&d).Error; err != nil {
		return storeError(c)
	}
	return jsonOK(c, map[string]any{"message": "Department added successfully", "id": d.ID})
}

// PUT /departments/:id
func (h *DepartmentHandler) Update(c echo.Context) error {
	var p departmentPayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	res := db(c).Model(&models.Department{}).Where("id = ?", c.Param("id")).Updates(map[string]any{
		"name":     p.Name,
		"head":     p.Head,
		"phone":    p.Phone,
		"email":    p.Email,
		"strength": p.Strength,
	})
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, map[string]any{"message": "Department updated successfully"})
}

// DELETE /departments/:id
func (h *DepartmentHandler) Delete(c echo.Context) error {
	res := db(c).Delete(&models.Department{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, map[string]any{"message": "Department deleted successfully"})
}
