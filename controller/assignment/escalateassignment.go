package assignment

import (
	"civictrack/dto"
	"civictrack/model"
	"civictrack/services"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func EscalateAssignment(c *gin.Context, db *gorm.DB) {
	assID, err := strconv.Atoi(c.Param("assignmentid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID format"})
		return
	}

	var req dto.EscalationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if _, err := services.GetAssignmentData(db, assID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignment"})
		}
		return
	}

	// Escalation grants a fixed 24 hour extension.
	newDeadline := time.Now().Add(24 * time.Hour)
	err = db.Model(&model.Assignment{}).Where("ass_id = ?", assID).Updates(map[string]interface{}{
		"deadline": newDeadline,
		"notes":    "Escalated: " + req.Reason,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to escalate assignment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Assignment escalated successfully",
	})
}
