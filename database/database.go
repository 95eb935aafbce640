package database

import (
	"context"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ankit-Samanta/college-admin-dashboard/config"
	"github.com/Ankit-Samanta/college-admin-dashboard/models"
)

var DB *gorm.DB

// QueryTimeout bounds every per-request database call so a stuck store
// surfaces as an error instead of a hung handler.
const QueryTimeout = 5 * time.Second

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db

	if err := Migrate(db); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

// Migrate creates/updates the schema, including the composite unique
// indexes that back the marks and attendance upserts.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Teacher{},
		&models.Employee{},
		&models.Department{},
		&models.Course{},
		&models.Mark{},
		&models.AttendanceRecord{},
		&models.LibraryBook{},
		&models.StudyMaterial{},
		&models.Announcement{},
	)
}

// Ctx binds the shared handle to a request context so queries observe the
// deadline set by the timeout middleware.
func Ctx(ctx context.Context) *gorm.DB {
	return DB.WithContext(ctx)
}
