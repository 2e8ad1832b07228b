package models

import "gorm.io/gorm"

// Transaction records a payment-like event; status is fixed at creation
type Transaction struct {
	gorm.Model
	UserID      uint    `json:"userId" gorm:"index;not null"`
	Type        string  `json:"type" gorm:"not null"` // enrollment, purchase, refund
	Amount      float64 `json:"amount" gorm:"not null"`
	Description string  `json:"description"`
	Status      string  `json:"status" gorm:"default:'completed'"`
	Reference   string  `json:"reference" gorm:"index"`
	IsDeleted   bool    `json:"-" gorm:"default:false"`
}
