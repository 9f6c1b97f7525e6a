package assignment

import (
	"civictrack/dto"
	"civictrack/model"
	"civictrack/services"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BulkAssignIssues assigns many issues to a single assignee. Per-issue
// failures are collected rather than aborting the whole batch.
func BulkAssignIssues(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	actor, err := currentProfile(c, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
		return
	}

	var req dto.BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	assignee, err := services.GetProfileData(db, req.StaffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignee not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate assignee"})
		}
		return
	}

	if assignee.Role != "staff" && assignee.Role != "supervisor" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Can only assign to staff members or supervisors"})
		return
	}

	if ok, reason := services.CanCreateAssignment(actor, assignee); !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": reason})
		return
	}

	processed := 0
	failed := 0
	errorMessages := []string{}

	for _, issueID := range req.IssueIDs {
		issue, err := services.GetIssueData(db, issueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errorMessages = append(errorMessages, fmt.Sprintf("Issue %d not found", issueID))
			} else {
				errorMessages = append(errorMessages, fmt.Sprintf("Error assigning issue %d: %v", issueID, err))
			}
			failed++
			continue
		}

		deadline := services.CalculateDeadline(issue.Category, issue.Priority)
		newAssignment := model.Assignment{
			IssueID:    issueID,
			StaffID:    req.StaffID,
			AssignedBy: actor.UserID,
			Status:     "assigned",
			Deadline:   &deadline,
			Notes:      req.Notes,
			AssignAt:   time.Now(),
		}

		if err := insertAssignment(db, &newAssignment); err != nil {
			if errors.Is(err, errAlreadyAssigned) {
				errorMessages = append(errorMessages, fmt.Sprintf("Issue %d already assigned to this %s", issueID, assignee.Role))
			} else {
				errorMessages = append(errorMessages, fmt.Sprintf("Failed to assign issue %d", issueID))
			}
			failed++
			continue
		}
		processed++

		if err := services.NotifyAssignmentCreated(db, firestoreClient, req.StaffID, issueID, actor.UserID); err != nil {
			fmt.Printf("Warning: Failed to send notification for issue %d: %v\n", issueID, err)
		}
	}

	message := fmt.Sprintf("Processed %d assignments to %s", processed, assignee.Role)
	if failed > 0 {
		message += fmt.Sprintf(", %d failed", failed)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   message,
		"processed": processed,
		"failed":    failed,
		"errors":    errorMessages,
	})
}
