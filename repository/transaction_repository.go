package repository

import (
	"time"

	"github.com/FEBRIAN80/managmnt-food/entity"

	"gorm.io/gorm"
)

type TransactionRepository struct{ DB *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// CreateTransaction and CreateTransactionItem take the caller's tx handle so
// parent and items land in one storage transaction.
func (r *TransactionRepository) CreateTransaction(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *TransactionRepository) CreateTransactionItem(tx *gorm.DB, it *entity.TransactionItem) error {
	return tx.Create(it).Error
}

func (r *TransactionRepository) GetWithItems(id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := r.DB.Preload("Items").Preload("Cashier").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GET /transactions → everything a history list needs, newest first
type TransactionSummary struct {
	ID                uint      `json:"id"`
	TransactionNumber string    `json:"transactionNumber"`
	TotalAmount       int64     `json:"totalAmount"`
	PaymentMethod     string    `json:"paymentMethod"`
	CashierID         uint      `json:"cashierId"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (r *TransactionRepository) ListRecent(limit int) ([]TransactionSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []TransactionSummary
	err := r.DB.Model(&entity.Transaction{}).
		Select("id, transaction_number, total_amount, payment_method, cashier_id, created_at").
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// SalesSince backs the dashboard: sum of totals and count of transactions
// created at or after the given instant.
func (r *TransactionRepository) SalesSince(t time.Time) (int64, int64, error) {
	var row struct {
		Sales int64
		Count int64
	}
	err := r.DB.Model(&entity.Transaction{}).
		Select("COALESCE(SUM(total_amount),0) AS sales, COUNT(*) AS count").
		Where("created_at >= ?", t).
		Scan(&row).Error
	return row.Sales, row.Count, err
}
