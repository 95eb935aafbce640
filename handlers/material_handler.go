package handlers

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

// MaterialHandler stores uploaded files under Dir and records their
// metadata; the database row is authoritative, the file store is
// best-effort on delete.
type MaterialHandler struct {
	Dir string
}

func NewMaterialHandler(dir string) *MaterialHandler {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("materials: cannot create upload dir %s: %v", dir, err)
	}
	return &MaterialHandler{Dir: dir}
}

// GET /studymaterials
func (h *MaterialHandler) List(c echo.Context) error {
	var items []models.StudyMaterial
	if err := db(c).Order("id DESC").Find(&items).Error; err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, items)
}

// POST /studymaterials/upload  (multipart field "file")
// The uploader is recorded by verified role, not by identity.
func (h *MaterialHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return jsonFail(c, http.StatusBadRequest, "No file uploaded")
	}

	src, err := fh.Open()
	if err != nil {
		return jsonFail(c, http.StatusBadRequest, "No file uploaded")
	}
	defer src.Close()

	// uuid prefix keeps concurrent uploads of the same filename apart
	stored := uuid.NewString() + "-" + filepath.Base(fh.Filename)
	dst, err := os.Create(filepath.Join(h.Dir, stored))
	if err != nil {
		log.Printf("materials: create %s failed: %v", stored, err)
		return storeError(c)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		log.Printf("materials: write %s failed: %v", stored, err)
		return storeError(c)
	}

	m := models.StudyMaterial{
		Filename:   stored,
		UploadedBy: callerRole(c),
		UploadDate: time.Now().Format("2006-01-02"),
	}
	if err := db(c).Create(&m).Error; err != nil {
		return storeError(c)
	}
	return jsonOK(c, map[string]any{"id": m.ID})
}

// DELETE /studymaterials/:id
// The row is removed first; a failed file removal is logged and the
// operation still succeeds (reconciled out of band).
func (h *MaterialHandler) Delete(c echo.Context) error {
	var m models.StudyMaterial
	if err := db(c).First(&m, "id = ?", c.Param("id")).Error; err != nil {
		return notFound(c)
	}

	if err := db(c).Delete(&models.StudyMaterial{}, "id = ?", m.ID).Error; err != nil {
		return storeError(c)
	}

	if err := os.Remove(filepath.Join(h.Dir, m.Filename)); err != nil {
		log.Printf("materials: failed to delete file %s: %v", m.Filename, err)
	}
	return jsonOK(c, nil)
}
