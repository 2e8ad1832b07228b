package models

import "gorm.io/gorm"

// UserProgress marks a lesson as reached by a user within a course.
// At most one record exists per (user, course, lesson) triple; the POST
// handler upserts against it.
type UserProgress struct {
	gorm.Model
	UserID    uint `json:"userId" gorm:"index:idx_progress_triple;not null"`
	CourseID  uint `json:"courseId" gorm:"index:idx_progress_triple;not null"`
	LessonID  uint `json:"lessonId" gorm:"index:idx_progress_triple;not null"`
	IsDeleted bool `json:"-" gorm:"default:false"`
}
