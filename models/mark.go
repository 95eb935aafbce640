package models

import "time"

// Mark references the student by display name, not by id. That back
// reference is a deliberate compatibility choice: renaming or deleting a
// student orphans their marks rather than cascading.
//
// (student_name, subject, department, year) is the natural key; the upsert
// only ever replaces the marks column on conflict.
type Mark struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudentName string    `json:"student_name" gorm:"size:100;not null;uniqueIndex:idx_marks_natural"`
	Subject     string    `json:"subject" gorm:"size:100;not null;uniqueIndex:idx_marks_natural"`
	Marks       string    `json:"marks" gorm:"size:10;not null"`
	Department  string    `json:"department" gorm:"size:100;not null;uniqueIndex:idx_marks_natural"`
	Year        string    `json:"year" gorm:"size:10;not null;uniqueIndex:idx_marks_natural"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
