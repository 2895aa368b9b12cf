package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/smartclass/sentinel_backend/internal/models"
)

// Archiver persists appended attendance records in the background. The live
// store stays the source of truth for the current process; the database is
// only there so records outlive a restart. Failures are logged and dropped,
// they must never reach the capture loop.
type Archiver struct {
	db *gorm.DB
}

func NewArchiver(db *gorm.DB) *Archiver {
	return &Archiver{db: db}
}

// Archive writes one record asynchronously.
func (a *Archiver) Archive(rec models.AttendanceRecord) {
	go func() {
		if err := a.db.Create(&rec).Error; err != nil {
			log.Printf("archive: failed to persist record %s: %v", rec.ID, err)
		}
	}()
}
