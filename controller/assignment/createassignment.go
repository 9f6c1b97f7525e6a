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
	"gorm.io/gorm/clause"
)

var errAlreadyAssigned = errors.New("issue is already assigned to this user")

func CreateAssignment(c *gin.Context, db *gorm.DB, firestoreClient *firestore.Client) {
	actor, err := currentProfile(c, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
		return
	}

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	// Validate that the issue exists
	issue, err := services.GetIssueData(db, req.IssueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate issue"})
		}
		return
	}

	// Validate that the assignee exists
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

	deadline := services.CalculateDeadline(issue.Category, issue.Priority)
	newAssignment := model.Assignment{
		IssueID:    req.IssueID,
		StaffID:    req.StaffID,
		AssignedBy: actor.UserID,
		Status:     "assigned",
		Deadline:   &deadline,
		Notes:      req.Notes,
		AssignAt:   time.Now(),
	}

	if err := insertAssignment(db, &newAssignment); err != nil {
		if errors.Is(err, errAlreadyAssigned) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Issue is already assigned to this %s", assignee.Role)})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment"})
		}
		return
	}

	// Notify the assignee; a notification failure never rolls the
	// assignment back.
	if err := services.NotifyAssignmentCreated(db, firestoreClient, req.StaffID, req.IssueID, actor.UserID); err != nil {
		fmt.Printf("Warning: Failed to send assignment notification: %v\n", err)
	}

	detail, err := loadAssignmentDetail(db, newAssignment.AssID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve created assignment"})
		return
	}

	c.JSON(http.StatusCreated, assignmentResponse(*detail))
}

// insertAssignment creates one assignment inside a transaction that locks the
// issue row, so the duplicate-active check and the insert cannot race. The
// issue flips from pending to in_progress in the same transaction.
func insertAssignment(db *gorm.DB, assignment *model.Assignment) error {
	return db.Transaction(func(tx *gorm.DB) error {
		issueQuery := tx.Where("issue_id = ?", assignment.IssueID)
		// SQLite serializes writers on its own; only MySQL needs the row lock.
		if tx.Dialector.Name() == "mysql" {
			issueQuery = issueQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var issue model.Issue
		if err := issueQuery.First(&issue).Error; err != nil {
			return err
		}

		var existing model.Assignment
		err := tx.Where("issue_id = ? AND staff_id = ? AND status IN ?",
			assignment.IssueID, assignment.StaffID, []string{"assigned", "in_progress"}).
			First(&existing).Error
		if err == nil {
			return errAlreadyAssigned
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(assignment).Error; err != nil {
			return err
		}

		if issue.Status == "pending" {
			return tx.Model(&model.Issue{}).
				Where("issue_id = ?", assignment.IssueID).
				Update("status", "in_progress").Error
		}
		return nil
	})
}
