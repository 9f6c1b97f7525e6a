package model

import (
	"time"
)

type Assignment struct {
	AssID      int        `gorm:"column:ass_id;primaryKey;autoIncrement"`
	IssueID    int        `gorm:"column:issue_id;not null;index:idx_issue_staff"`
	StaffID    int        `gorm:"column:staff_id;not null;index:idx_issue_staff"`
	AssignedBy int        `gorm:"column:assigned_by"`
	Status     string     `gorm:"column:status;type:varchar(20);default:'assigned';not null"`
	Deadline   *time.Time `gorm:"column:deadline"`
	Notes      string     `gorm:"column:notes;type:text"`
	AssignAt   time.Time  `gorm:"column:assign_at;autoCreateTime"`

	// Relations
	Issue    Issue   `gorm:"foreignKey:IssueID;references:IssueID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Staff    Profile `gorm:"foreignKey:StaffID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Assigner Profile `gorm:"foreignKey:AssignedBy;references:UserID;constraint:OnUpdate:CASCADE"`
}

func (Assignment) TableName() string {
	return "issue_assignments"
}
