package services

import (
	"civictrack/model"

	"gorm.io/gorm"
)

func GetProfileData(db *gorm.DB, userID int) (*model.Profile, error) {
	var profile model.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func GetIssueData(db *gorm.DB, issueID int) (*model.Issue, error) {
	var issue model.Issue
	if err := db.Where("issue_id = ?", issueID).First(&issue).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

func GetAssignmentData(db *gorm.DB, assID int) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := db.Where("ass_id = ?", assID).First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetAssignableProfiles lists profiles eligible as assignment targets,
// optionally scoped to a department and a role subset.
func GetAssignableProfiles(db *gorm.DB, department string, roles []string) ([]model.Profile, error) {
	if len(roles) == 0 {
		roles = []string{"staff", "supervisor"}
	}
	query := db.Where("role IN ?", roles)
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var profiles []model.Profile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
