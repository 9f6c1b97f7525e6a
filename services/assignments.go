package services

import (
	"civictrack/model"

	"gorm.io/gorm"
)

// AssignmentFilter enumerates the recognized assignment list filters.
// StaffIDs is set-valued: nil means no staff filter at all, while an empty
// non-nil set matches nothing and callers should short-circuit before
// querying.
type AssignmentFilter struct {
	StaffIDs []int
	IssueID  int
	Status   string
}

func (f AssignmentFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.StaffIDs != nil {
		query = query.Where("staff_id IN ?", f.StaffIDs)
	}
	if f.IssueID != 0 {
		query = query.Where("issue_id = ?", f.IssueID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	return query
}

// QueryAssignments returns one page of assignments matching the filter along
// with the total match count, relations preloaded.
func QueryAssignments(db *gorm.DB, filter AssignmentFilter, page, perPage int) ([]model.Assignment, int64, error) {
	var total int64
	if err := filter.Apply(db.Model(&model.Assignment{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assignments []model.Assignment
	err := filter.Apply(db.Preload("Staff").Preload("Assigner").Preload("Issue")).
		Order("assign_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}
	return assignments, total, nil
}

// CountActiveAssignments counts a user's assignments that are still open.
func CountActiveAssignments(db *gorm.DB, userID int) (int64, error) {
	var count int64
	err := db.Model(&model.Assignment{}).
		Where("staff_id = ? AND status IN ?", userID, []string{"assigned", "in_progress"}).
		Count(&count).Error
	return count, err
}
