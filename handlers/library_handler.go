package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

type LibraryHandler struct{}

func NewLibraryHandler() *LibraryHandler { return &LibraryHandler{} }

type bookPayload struct {
	Title   string `json:"title" validate:"required"`
	Author  string `json:"author" validate:"required"`
	Subject string `json:"subject" validate:"required"`
}

func (p *bookPayload) normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Author = strings.Join(strings.Fields(p.Author), " ")
	p.Subject = strings.TrimSpace(p.Subject)
}

// GET /library
func (h *LibraryHandler) List(c echo.Context) error {
	var items []models.LibraryBook
	if err := db(c).Order("id ASC").Find(&items).Error; err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, items)
}

// POST /library
func (h *LibraryHandler) Create(c echo.Context) error {
	var p bookPayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	b := models.LibraryBook{Title: p.Title, Author: p.Author, Subject: p.Subject}
	if err := db(c).Create(&b).Error; err != nil {
		return storeError(c)
	}
	return jsonOK(c, map[string]any{"id": b.ID})
}

// PUT /library/:id
func (h *LibraryHandler) Update(c echo.Context) error {
	var p bookPayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	res := db(c).Model(&models.LibraryBook{}).Where("id = ?", c.Param("id")).Updates(map[string]any{
		"title":   p.Title,
		"author":  p.Author,
		"subject": p.Subject,
	})
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, map[string]any{"message": "Book updated successfully"})
}

// DELETE /library/:id
func (h *LibraryHandler) Delete(c echo.Context) error {
	res := db(c).Delete(&models.LibraryBook{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, nil)
}
