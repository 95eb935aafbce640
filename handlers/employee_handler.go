package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

type EmployeeHandler struct{}

func NewEmployeeHandler() *EmployeeHandler { return &EmployeeHandler{} }

type employeePayload struct {
	Name  string `json:"name" validate:"required"`
	Role  string `json:"role" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

func (p *employeePayload) normalize() {
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.Role = strings.TrimSpace(p.Role)
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
}

// GET /employees
func (h *EmployeeHandler) List(c echo.Context) error {
	var items []models.Employee
	if err := db(c).Order("id ASC").Find(&items).Error; err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, items)
}

// POST /employees
func (h *EmployeeHandler) Create(c echo.Context) error {
	var p employeePayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	e := models.Employee{Name: p.Name, Role: p.Role, Email: p.Email, Phone: p.Phone}
	if err := db(c).Create(&e).Error; err != nil {
		return storeError(c)
	}
	return jsonOK(c, map[string]any{"id": e.ID})
}

// PUT /employees/:id
func (h *EmployeeHandler) Update(c echo.Context) error {
	var p employeePayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	res := db(c).Model(&models.Employee{}).Where("id = ?", c.Param("id")).Updates(map[string]any{
		"name":  p.Name,
		"role":  p.Role,
		"email": p.Email,
		"phone": p.Phone,
	})
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, nil)
}

// DELETE /employees/:id
func (h *EmployeeHandler) Delete(c echo.Context) error {
	res := db(c).Delete(&models.Employee{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, nil)
}
