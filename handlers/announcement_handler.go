package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

type AnnouncementHandler struct{}

func NewAnnouncementHandler() *AnnouncementHandler { return &AnnouncementHandler{} }

type announcementPayload struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Date    string `json:"date" validate:"required"` // YYYY-MM-DD
}

func (p *announcementPayload) normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Message = strings.TrimSpace(p.Message)
	p.Date = strings.TrimSpace(p.Date)
}

// GET /announcements
func (h *AnnouncementHandler) List(c echo.Context) error {
	var items []models.Announcement
	if err := db(c).Order("date DESC, id DESC").Find(&items).Error; err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, items)
}

// POST /announcements
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var p announcementPayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	a := models.Announcement{Title: p.Title, Message: p.Message, Date: p.Date}
	if err := db(c).Create(&a).Error; err != nil {
		return storeError(c)
	}
	return jsonOK(c, map[string]any{"id": a.ID})
}

// PUT /announcements/:id
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var p announcementPayload
	if err := c.Bind(&p); err != nil {
		return badPayload(c)
	}
	p.normalize()
	if err := validate.Struct(&p); err != nil {
		return missingFields(c)
	}

	res := db(c).Model(&models.Announcement{}).Where("id = ?", c.Param("id")).Updates(map[string]any{
		"title":   p.Title,
		"message": p.Message,
		"date":    p.Date,
	})
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, nil)
}

// DELETE /announcements/:id
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	res := db(c).Delete(&models.Announcement{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return storeError(c)
	}
	if res.RowsAffected == 0 {
		return notFound(c)
	}
	return jsonOK(c, nil)
}
