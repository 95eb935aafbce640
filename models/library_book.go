package models

import "time"

type LibraryBook struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Author    string    `json:"author" gorm:"size:100;not null"`
	Subject   string    `json:"subject" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
