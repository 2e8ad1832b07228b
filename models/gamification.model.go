package models

import (
	"time"

	"gorm.io/gorm"
)

// Rank is a leaderboard entry for a user within a course
type Rank struct {
	gorm.Model
	UserID     uint      `json:"userId" gorm:"index;not null"`
	CourseID   uint      `json:"courseId" gorm:"index;not null"`
	Score      int       `json:"score"`
	Rank       int       `json:"rank"`
	AchievedAt time.Time `json:"achievedAt"`
	IsDeleted  bool      `json:"-" gorm:"default:false"`
}

// Badge is an earnable achievement definition
type Badge struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`
	Criteria    string `json:"criteria"`
	Icon        string `json:"icon"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// UserBadge awards a badge to a user
type UserBadge struct {
	gorm.Model
	UserID    uint      `json:"userId" gorm:"index;not null"`
	BadgeID   uint      `json:"badgeId" gorm:"index;not null"`
	EarnedAt  time.Time `json:"earnedAt"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
}
