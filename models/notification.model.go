package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is an in-app message for a user. The only mutation allowed
// after creation is marking it read.
type Notification struct {
	gorm.Model
	UserID    uint       `json:"userId" gorm:"index;not null"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	IsRead    bool       `json:"isRead" gorm:"default:false"`
	ReadAt    *time.Time `json:"readAt"`
	IsDeleted bool       `json:"-" gorm:"default:false"`
}
