package model

import (
	"time"
)

type Notification struct {
	NotificationID int       `gorm:"column:notification_id;primaryKey;autoIncrement"`
	UserID         int       `gorm:"column:user_id;not null"`
	IssueID        int       `gorm:"column:issue_id"`
	Message        string    `gorm:"column:message;type:text"`
	IsRead         bool      `gorm:"column:is_read;default:false"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	User Profile `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (Notification) TableName() string {
	return "notifications"
}
