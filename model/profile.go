package model

import (
	"time"
)

type Profile struct {
	UserID     int       `gorm:"column:user_id;primaryKey;autoIncrement"`
	FullName   string    `gorm:"column:full_name;type:varchar(255);not null"`
	Email      string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Role       string    `gorm:"column:role;type:varchar(20);default:'staff';not null"`
	Department string    `gorm:"column:department;type:varchar(100)"`
	CreateAt   time.Time `gorm:"column:create_at;autoCreateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
