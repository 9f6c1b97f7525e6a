package dto

import (
	"time"
)

type CreateAssignmentRequest struct {
	IssueID int    `json:"issue_id" binding:"required"`
	StaffID int    `json:"staff_id" binding:"required"`
	Notes   string `json:"notes"`
}

type UpdateAssignmentRequest struct {
	Status   *string    `json:"status" binding:"omitempty,oneof=assigned in_progress completed"`
	Notes    *string    `json:"notes"`
	Deadline *time.Time `json:"deadline"`
}

type BulkAssignRequest struct {
	IssueIDs []int  `json:"issue_ids" binding:"required,min=1"`
	StaffID  int    `json:"staff_id" binding:"required"`
	Notes    string `json:"notes"`
}

type EscalationRequest struct {
	Reason string `json:"reason" binding:"required"`
}
