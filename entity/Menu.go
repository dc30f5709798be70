package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name        string `json:"name"`
	Detail      string `json:"detail"`
	Price       int64  `json:"price"`
	IsAvailable bool   `json:"isAvailable" gorm:"default:true"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"` // preload for catalog listing

	TransactionItems []TransactionItem `json:"-"`
}
