package assignment

import (
	"civictrack/model"
	"civictrack/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteAssignment(c *gin.Context, db *gorm.DB) {
	assID, err := strconv.Atoi(c.Param("assignmentid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID format"})
		return
	}

	assignment, err := services.GetAssignmentData(db, assID)
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

	assignee, err := services.GetProfileData(db, assignment.StaffID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load assignee profile"})
		return
	}

	if !services.CanDeleteAssignment(actor, assignee) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete assignments outside your department"})
		return
	}

	if err := db.Where("ass_id = ?", assID).Delete(&model.Assignment{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete assignment"})
		return
	}

	// Reset the issue when its last assignment goes away.
	var remaining int64
	if err := db.Model(&model.Assignment{}).Where("issue_id = ?", assignment.IssueID).Count(&remaining).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete assignment"})
		return
	}
	if remaining == 0 {
		if err := db.Model(&model.Issue{}).Where("issue_id = ?", assignment.IssueID).Update("status", "pending").Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue status"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Assignment deleted successfully",
	})
}
