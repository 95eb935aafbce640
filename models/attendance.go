package models

import "time"

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// AttendanceRecord keys on (student_id, date); re-marking the same day
// replaces status only. StudentName is a denormalized display copy and is
// not updated when the student record changes.
type AttendanceRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudentID   uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_attendance_natural"`
	StudentName string    `json:"student_name" gorm:"size:100;not null"`
	Department  string    `json:"department" gorm:"size:100;not null"`
	Year        string    `json:"year" gorm:"size:10;not null"`
	Date        string    `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_natural"` // YYYY-MM-DD
	Status      string    `json:"status" gorm:"size:10;not null"`                                  // Present | Absent
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
