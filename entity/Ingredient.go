package entity

import (
	"gorm.io/gorm"
)

type Ingredient struct {
	gorm.Model
	Name         string  `json:"name"`
	Unit         string  `json:"unit"` // kg, liter, pcs, ...
	CurrentStock float64 `json:"currentStock"`
	MinStock     float64 `json:"minStock"`
	CostPerUnit  int64   `json:"costPerUnit"`

	SupplierID *uint     `json:"supplierId"`
	Supplier   *Supplier `json:"supplier"`

	Movements []StockMovement `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
