package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/smartclass/sentinel_backend/internal/models"
)

// SeedStudents creates a small demo roster when the students table is empty,
// so the simulated detector has someone to recognize out of the box.
func SeedStudents(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Student{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	students := []models.Student{
		{Name: "Riya Sen", Email: "riya.sen@school.edu"},
		{Name: "Aryan Das", Email: "aryan.das@school.edu"},
		{Name: "Priya Sharma", Email: "priya.sharma@school.edu"},
		{Name: "Vikash Kumar", Email: "vikash.kumar@school.edu"},
	}
	for i := range students {
		if err := db.Create(&students[i]).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded sample roster:", len(students), "students")
	return nil
}
