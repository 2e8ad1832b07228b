package models

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseTeamPrefix marks team identifiers that back course enrollment groups
const CourseTeamPrefix = "course-"

// Team is a collaboration group. One team exists per course and holds the
// course's enrolled students as members.
type Team struct {
	gorm.Model
	TeamID    string         `json:"teamId" gorm:"unique;not null"`
	Name      string         `json:"name"`
	Roles     datatypes.JSON `json:"roles"` // JSON array of role names
	IsDeleted bool           `json:"-" gorm:"default:false"`
}

// Membership joins a user to a team. Course enrollment is one membership on
// the course's team with role "student".
type Membership struct {
	gorm.Model
	TeamID    string `json:"teamId" gorm:"index;not null"`
	UserID    uint   `json:"userId" gorm:"index;not null"`
	Role      string `json:"role" gorm:"default:'student'"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

// CourseTeamID builds the team identifier for a course
func CourseTeamID(courseID uint) string {
	return fmt.Sprintf("%s%d", CourseTeamPrefix, courseID)
}
