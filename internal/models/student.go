package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is one roster entry. The roster is the denominator for every
// attendance rate the analytics layer reports.
type Student struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:128" json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
