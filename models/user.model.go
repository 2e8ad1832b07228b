package models

import (
	"gorm.io/gorm"
)

// User roles recognised by the permission table
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User represents a platform account resolved from the identity header
type User struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"unique;not null"`
	Role      string `json:"role" gorm:"default:'student'"` // admin, student
	IsDeleted bool   `gorm:"default:false"`
}
