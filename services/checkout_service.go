package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/FEBRIAN80/managmnt-food/entity"
	"github.com/FEBRIAN80/managmnt-food/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Only cash is accepted at the register for now.
const PaymentMethodCash = "cash"

type CheckoutService struct {
	DB   *gorm.DB
	Repo *repository.TransactionRepository
}

func NewCheckoutService(db *gorm.DB, repo *repository.TransactionRepository) *CheckoutService {
	return &CheckoutService{DB: db, Repo: repo}
}

// NewTransactionNumber keeps the timestamp readable for operators and adds a
// uuid-derived suffix so two stations checking out in the same instant cannot
// collide. The unique index on transactions.transaction_number backs this up.
func NewTransactionNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TRX-%s-%s", now.Format("20060102150405"), suffix)
}

// Commit turns the cart into a persisted Transaction plus its items, written
// as one storage transaction: either the parent and every line land, or
// nothing does. The cart itself is never mutated here; the caller clears it
// only after seeing success, so a failed commit is safe to retry as-is.
func (s *CheckoutService) Commit(cart *Cart, discountRate int, cashierID uint) (*entity.Transaction, error) {
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	pricing, err := CalculatePricing(lines, discountRate)
	if err != nil {
		return nil, err
	}
	amounts := pricing.Rounded()

	txn := &entity.Transaction{
		TransactionNumber: NewTransactionNumber(time.Now()),
		Subtotal:          amounts.Subtotal,
		DiscountRate:      amounts.DiscountRate,
		DiscountAmount:    amounts.DiscountAmount,
		TaxRate:           amounts.TaxRate,
		TaxAmount:         amounts.TaxAmount,
		TotalAmount:       amounts.Total,
		PaymentMethod:     PaymentMethodCash,
		CashierID:         cashierID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateTransaction(tx, txn); err != nil {
			return err
		}
		for _, l := range lines {
			it := entity.TransactionItem{
				TransactionID: txn.ID,
				MenuID:        l.MenuID,
				MenuName:      l.Name,
				Qty:           l.Qty,
				UnitPrice:     l.UnitPrice,
				Subtotal:      l.Subtotal,
			}
			if err := s.Repo.CreateTransactionItem(tx, &it); err != nil {
				return err
			}
			txn.Items = append(txn.Items, it)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}
	return txn, nil
}
