package entity

import (
	"gorm.io/gorm"
)

type TransactionItem struct {
	gorm.Model
	TransactionID uint        `json:"transactionId"`
	Transaction   Transaction `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	// MenuName and UnitPrice are snapshots taken at commit time, so a
	// receipt stays reproducible after the catalog changes.
	MenuName  string `json:"menuName"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Subtotal  int64  `json:"subtotal"`
}
