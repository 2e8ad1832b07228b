package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz belongs to a course and has many questions
type Quiz struct {
	gorm.Model
	CourseID     uint   `json:"courseId" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	TimeLimit    int    `json:"timeLimit" gorm:"default:0"` // minutes
	AttemptCount int    `json:"attemptCount" gorm:"default:0"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}

// QuizQuestion is a single question with its options and the correct answer
type QuizQuestion struct {
	gorm.Model
	QuizID        uint           `json:"quizId" gorm:"index;not null"`
	Question      string         `json:"question"`
	Options       datatypes.JSON `json:"options"` // JSON array of option strings
	CorrectAnswer string         `json:"correctAnswer"`
	OrderIndex    int            `json:"order" gorm:"column:order_index;default:0"`
	IsDeleted     bool           `json:"-" gorm:"default:false"`
}

// QuizAttempt records a graded submission; immutable once created
type QuizAttempt struct {
	gorm.Model
	UserID         uint           `json:"userId" gorm:"index;not null"`
	QuizID         uint           `json:"quizId" gorm:"index;not null"`
	Answers        datatypes.JSON `json:"answers"`   // submitted answers, positional
	Breakdown      datatypes.JSON `json:"breakdown"` // per-question grading detail
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	Passed         bool           `json:"passed"`
	AttemptedAt    time.Time      `json:"attemptedAt"`
	IsDeleted      bool           `json:"-" gorm:"default:false"`
}
