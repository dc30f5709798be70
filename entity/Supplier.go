package entity

import (
	"gorm.io/gorm"
)

type Supplier struct {
	gorm.Model
	Name  string `json:"name"`
	Phone string `json:"phone"`

	Ingredients []Ingredient `json:"-"`
}
