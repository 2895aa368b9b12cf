package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartclass/sentinel_backend/internal/database"
	"github.com/smartclass/sentinel_backend/internal/models"
	"github.com/smartclass/sentinel_backend/internal/store"
)

type StudentController struct {
	DB     *gorm.DB
	Roster *store.Roster
}

// List returns the full roster.
func (sc *StudentController) List(c *gin.Context) {
	students, err := database.LoadStudents(sc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": students})
}

// Create adds a student and refreshes the in-memory roster cache.
func (sc *StudentController) Create(c *gin.Context) {
	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student := models.Student{Name: req.Name, Email: req.Email}
	if err := sc.DB.Create(&student).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	students, err := database.LoadStudents(sc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sc.Roster.Replace(students)

	c.JSON(http.StatusCreated, gin.H{"data": student})
}
