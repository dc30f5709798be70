package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     string `json:"role"` // "admin" | "cashier"

	Transactions []Transaction `gorm:"foreignKey:CashierID" json:"-"`
}
