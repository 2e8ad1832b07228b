package models

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	InstructorID    string  `json:"instructorId" gorm:"index"`
	Category        string  `json:"category" gorm:"index"`
	Price           float64 `json:"price" gorm:"default:0"`
	EnrollmentCount int     `json:"enrollmentCount" gorm:"default:0"`
	IsPublished     bool    `json:"isPublished" gorm:"default:false"`
	IsDeleted       bool    `json:"-" gorm:"default:false"`
}

// Lesson belongs to a course, ordered by OrderIndex within it
type Lesson struct {
	gorm.Model
	CourseID        uint   `json:"courseId" gorm:"index;not null"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	OrderIndex      int    `json:"order" gorm:"column:order_index;default:0"`
	CompletionCount int    `json:"completionCount" gorm:"default:0"`
	IsDeleted       bool   `json:"-" gorm:"default:false"`
}
