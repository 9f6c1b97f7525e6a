package assignment

import (
	"civictrack/dto"
	"civictrack/model"
	"civictrack/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UpdateAssignment(c *gin.Context, db *gorm.DB) {
	assID, err := strconv.Atoi(c.Param("assignmentid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID format"})
		return
	}

	existing, err := services.GetAssignmentData(db, assID)
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

	assignee, err := services.GetProfileData(db, existing.StaffID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load assignee profile"})
		return
	}

	if !services.CanAccessAssignment(actor, assignee) {
		if actor.Role == "supervisor" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update assignments outside your department"})
		} else {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this assignment"})
		}
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Deadline != nil {
		updates["deadline"] = *req.Deadline
	}

	if len(updates) > 0 {
		if err := db.Model(&model.Assignment{}).Where("ass_id = ?", assID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assignment"})
			return
		}
	}

	// Derive the parent issue's status from its assignments.
	if req.Status != nil {
		switch *req.Status {
		case "completed":
			var incomplete int64
			err := db.Model(&model.Assignment{}).
				Where("issue_id = ? AND status <> ?", existing.IssueID, "completed").
				Count(&incomplete).Error
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assignment"})
				return
			}
			if incomplete == 0 {
				if err := db.Model(&model.Issue{}).Where("issue_id = ?", existing.IssueID).Update("status", "resolved").Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue status"})
					return
				}
			}
		case "in_progress":
			if err := db.Model(&model.Issue{}).Where("issue_id = ?", existing.IssueID).Update("status", "in_progress").Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue status"})
				return
			}
		}
	}

	detail, err := loadAssignmentDetail(db, assID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve updated assignment"})
		return
	}

	c.JSON(http.StatusOK, assignmentResponse(*detail))
}
