package entity

import (
	"gorm.io/gorm"
)

type StockMovement struct {
	gorm.Model
	IngredientID uint       `json:"ingredientId"`
	Ingredient   Ingredient `json:"-"`

	Type          string  `json:"type"` // "in" | "out"
	Quantity      float64 `json:"quantity"`
	Reason        string  `json:"reason"`
	ReferenceType string  `json:"referenceType"` // "manual" for now
}
