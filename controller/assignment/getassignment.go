package assignment

import (
	"civictrack/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetAssignment(c *gin.Context, db *gorm.DB) {
	assID, err := strconv.Atoi(c.Param("assignmentid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID format"})
		return
	}

	detail, err := loadAssignmentDetail(db, assID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignment"})
		}
		return
	}

	actor, err := currentProfile(c, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
		return
	}

	if !services.CanAccessAssignment(actor, &detail.Staff) {
		if actor.Role == "supervisor" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view assignments outside your department"})
		} else {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this assignment"})
		}
		return
	}

	c.JSON(http.StatusOK, assignmentResponse(*detail))
}
