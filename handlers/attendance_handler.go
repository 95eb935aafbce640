package handlers

import (
	"net/http"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm/clause"

	"github.com/Ankit-Samanta/college-admin-dashboard/middlewares"
	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

type AttendanceHandler struct{}

func NewAttendanceHandler() *AttendanceHandler { return &AttendanceHandler{} }

type attendanceRecordPayload struct {
	StudentID   uint   `json:"student_id" validate:"required"`
	StudentName string `json:"student_name" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Year        string `json:"year" validate:"required"`
	Date        string `json:"date" validate:"required"` // YYYY-MM-DD
	Status      string `json:"status" validate:"required,oneof=Present Absent"`
}

func (p *attendanceRecordPayload) normalize() {
	p.StudentName = strings.Join(strings.Fields(p.StudentName), " ")
	p.Department = strings.TrimSpace(p.Department)
	p.Year = canonicalYear(strings.TrimSpace(p.Year))
	p.Date = strings.TrimSpace(p.Date)
	p.Status = strings.TrimSpace(p.Status)
}

// GET /attendance?department=&year=&date=
// Dates are stored as YYYY-MM-DD so equality is already a date-only
// compare; year matches TRIM+LOWER. Students only ever see their own rows.
func (h *AttendanceHandler) List(c echo.Context) error {
	tx := db(c).Model(&models.AttendanceRecord{})

	if dep := strings.TrimSpace(c.QueryParam("department")); dep != "" {
		tx = tx.Where("department = ?", dep)
	}
	if year := strings.TrimSpace(c.QueryParam("year")); year != "" {
		tx = tx.Where("TRIM(LOWER(year)) = ?", strings.ToLower(canonicalYear(year)))
	}
	if date := strings.TrimSpace(c.QueryParam("date")); date != "" {
		tx = tx.Where("date = ?", date)
	}

	if callerRole(c) == middlewares.RoleStudent {
		tx = tx.Where("student_id = ?", callerID(c))
	}

	var rows []models.AttendanceRecord
	if err := tx.Order("date ASC, student_name ASC").Find(&rows).Error; err != nil {
		return storeError(c)
	}
	return c.JSON(http.StatusOK, rows)
}

type rosterRow struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// GET /attendance/students?department=&year=&date=
// Roster for the attendance-taking table. With a date supplied, the roster
// and the already-recorded statuses for that day load concurrently and are
// joined in memory, so a half-marked day comes back pre-filled.
func (h *AttendanceHandler) Students(c echo.Context) error {
	dep := strings.TrimSpace(c.QueryParam("department"))
	year := strings.TrimSpace(c.QueryParam("year"))
	date := strings.TrimSpace(c.QueryParam("date"))
	if dep == "" || year == "" {
		return c.JSON(http.StatusOK, []rosterRow{})
	}

	var (
		students []models.Student
		existing []models.AttendanceRecord
		stuErr   error
		recErr   error
		wg       sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		stuErr = db(c).Model(&models.Student{}).
			Select("id, name").
			Where("department = ? AND TRIM(LOWER(year)) = ?", dep, strings.ToLower(canonicalYear(year))).
			Order("name ASC").
			Find(&students).Error
	}()
	if date != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recErr = db(c).Model(&models.AttendanceRecord{}).
				Where("department = ? AND TRIM(LOWER(year)) = ? AND date = ?",
					dep, strings.ToLower(canonicalYear(year)), date).
				Find(&existing).Error
		}()
	}
	wg.Wait()

	if stuErr != nil || recErr != nil {
		return storeError(c)
	}

	statusByID := make(map[uint]string, len(existing))
	for _, r := range existing {
		statusByID[r.StudentID] = r.Status
	}
	rows := make([]rosterRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, rosterRow{ID: s.ID, Name: s.Name, Status: statusByID[s.ID]})
	}
	return c.JSON(http.StatusOK, rows)
}

type bulkAttendanceReq struct {
	Records []attendanceRecordPayload `json:"records"`
}

// POST /attendance/bulk
// All-or-nothing: any invalid record rejects the whole batch, and the
// upsert itself is a single multi-row statement, so a driver failure never
// leaves part of the batch behind. Re-marking an already-marked day
// replaces status only; (student_id, date) stays unique.
func (h *AttendanceHandler) BulkUpsert(c echo.Context) error {
	var req bulkAttendanceReq
	if err := c.Bind(&req); err != nil {
		return badPayload(c)
	}
	if len(req.Records) == 0 {
		return jsonFail(c, http.StatusBadRequest, "No records to save")
	}

	rows := make([]models.AttendanceRecord, 0, len(req.Records))
	for i := range req.Records {
		p := &req.Records[i]
		p.normalize()
		if err := validate.Struct(p); err != nil {
			return missingFields(c)
		}
		rows = append(rows, models.AttendanceRecord{
			StudentID:   p.StudentID,
			StudentName: p.StudentName,
			Department:  p.Department,
			Year:        p.Year,
			Date:        p.Date,
			Status:      p.Status,
		})
	}

	err := db(c).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return storeError(c)
	}
	return jsonOK(c, map[string]any{"count": len(rows)})
}
