package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/smartclass/sentinel_backend/internal/config"
	"github.com/smartclass/sentinel_backend/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Student{}, &models.AttendanceRecord{})
}

// LoadStudents returns the full roster, ordered by name.
func LoadStudents(db *gorm.DB) ([]models.Student, error) {
	var students []models.Student
	if err := db.Order("name").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// LoadRecords returns all archived attendance records in timestamp order,
// used at startup to rebuild the in-memory store so the 7-day metrics window
// survives restarts.
func LoadRecords(db *gorm.DB) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := db.Order("timestamp").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
