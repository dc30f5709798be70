package entity

import (
	"gorm.io/gorm"
)

type Transaction struct {
	gorm.Model
	TransactionNumber string `json:"transactionNumber" gorm:"uniqueIndex"`

	Subtotal       int64 `json:"subtotal"`
	DiscountRate   int   `json:"discountRate"`
	DiscountAmount int64 `json:"discountAmount"`
	TaxRate        int   `json:"taxRate"`
	TaxAmount      int64 `json:"taxAmount"`
	TotalAmount    int64 `json:"totalAmount"`

	PaymentMethod string `json:"paymentMethod"`

	CashierID uint `json:"cashierId"`
	Cashier   User `json:"-"` // preload only when the cashier name is needed

	Items []TransactionItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
