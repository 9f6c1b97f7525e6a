package model

import (
	"time"
)

type Issue struct {
	IssueID     int       `gorm:"column:issue_id;primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	Category    string    `gorm:"column:category;type:varchar(100)"`
	Priority    string    `gorm:"column:priority;type:varchar(20);default:'medium'"`
	Status      string    `gorm:"column:status;type:varchar(20);default:'pending';not null"`
	ReportedBy  int       `gorm:"column:reported_by"`
	CreateAt    time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	Reporter Profile `gorm:"foreignKey:ReportedBy;references:UserID;constraint:OnUpdate:CASCADE"`
}

func (Issue) TableName() string {
	return "issues"
}
