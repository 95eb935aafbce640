package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ankit-Samanta/college-admin-dashboard/database"
	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

func TestMarksUpsertIdempotent(t *testing.T) {
	e := newTestServer(t)

	payload := map[string]string{
		"student_name": "Jane", "subject": "Algebra", "marks": "88",
		"department": "CS", "year": "2nd",
	}
	rec := doJSON(t, e, http.MethodPost, "/marks", teacherToken(t), payload)
	assert.Equal(t, http.StatusOK, rec.Code)

	payload["marks"] = "92"
	rec = doJSON(t, e, http.MethodPost, "/marks", teacherToken(t), payload)
	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []models.Mark
	database.DB.Find(&rows)
	assert.Len(t, rows, 1, "re-saving the same natural key must not duplicate the row")
	assert.Equal(t, "92", rows[0].Marks)
	assert.Equal(t, "Jane", rows[0].StudentName)

	// a different subject is a different natural key
	payload["subject"] = "Physics"
	rec = doJSON(t, e, http.MethodPost, "/marks", teacherToken(t), payload)
	assert.Equal(t, http.StatusOK, rec.Code)
	database.DB.Find(&rows)
	assert.Len(t, rows, 2)
}

func TestMarksQueryYearNormalization(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/marks", teacherToken(t), map[string]string{
		"student_name": "Jane", "subject": "Algebra", "marks": "88",
		"department": "CS", "year": "2", // stored canonicalized as "2nd"
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, year := range []string{"2nd", "2", "2ND"} {
		list := doJSON(t, e, http.MethodGet, "/marks?department=CS&year="+year, teacherToken(t), nil)
		assert.Equal(t, http.StatusOK, list.Code)
		var rows []models.Mark
		decode(t, list, &rows)
		assert.Len(t, rows, 1, "year filter %q should match stored 2nd", year)
	}
}

func TestMarksStudentRowScoping(t *testing.T) {
	e := newTestServer(t)
	jane := seedStudent(t, "Jane", "CS-001", "jane@college.edu", "CS", "2nd", "pw")
	seedStudent(t, "Yusuf", "CS-002", "yusuf@college.edu", "CS", "2nd", "pw")

	for _, m := range []map[string]string{
		{"student_name": "Jane", "subject": "Algebra", "marks": "88", "department": "CS", "year": "2nd"},
		{"student_name": "Yusuf", "subject": "Algebra", "marks": "71", "department": "CS", "year": "2nd"},
	} {
		rec := doJSON(t, e, http.MethodPost, "/marks", teacherToken(t), m)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// query params would match both rows; the student still only gets theirs
	janeTok := token(t, jane.ID, "student", jane.Name, jane.Email)
	list := doJSON(t, e, http.MethodGet, "/marks?department=CS&year=2nd&subject=Algebra", janeTok, nil)
	assert.Equal(t, http.StatusOK, list.Code)
	var rows []models.Mark
	decode(t, list, &rows)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Jane", rows[0].StudentName)

	// staff see the full set
	full := doJSON(t, e, http.MethodGet, "/marks?department=CS&year=2nd", teacherToken(t), nil)
	decode(t, full, &rows)
	assert.Len(t, rows, 2)
}

func TestMarksWriteRequiresStaff(t *testing.T) {
	e := newTestServer(t)
	stud := seedStudent(t, "Jane", "CS-001", "jane@college.edu", "CS", "2nd", "pw")

	rec := doJSON(t, e, http.MethodPost, "/marks", token(t, stud.ID, "student", stud.Name, stud.Email), map[string]string{
		"student_name": "Jane", "subject": "Algebra", "marks": "100",
		"department": "CS", "year": "2nd",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var n int64
	database.DB.Model(&models.Mark{}).Count(&n)
	assert.Zero(t, n)
}

func TestMarksRoster(t *testing.T) {
	e := newTestServer(t)
	seedStudent(t, "Jane", "CS-001", "jane@college.edu", "CS", "2nd", "pw")
	seedStudent(t, "Yusuf", "CS-002", "yusuf@college.edu", "CS", "3rd", "pw")

	rec := doJSON(t, e, http.MethodGet, "/marks/students?department=CS&year=2", teacherToken(t), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []models.Student
	decode(t, rec, &rows)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Jane", rows[0].Name)

	// roster is staff-only
	forb := doJSON(t, e, http.MethodGet, "/marks/students?department=CS&year=2",
		token(t, 1, "student", "Jane", "jane@college.edu"), nil)
	assert.Equal(t, http.StatusForbidden, forb.Code)
}
