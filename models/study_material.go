package models

import "time"

type StudyMaterial struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Filename   string    `json:"filename" gorm:"size:255;not null"` // stored name under the uploads dir
	UploadedBy string    `json:"uploaded_by" gorm:"size:20;not null"`
	UploadDate string    `json:"upload_date" gorm:"size:10;not null"` // YYYY-MM-DD
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
