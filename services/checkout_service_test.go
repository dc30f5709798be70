package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/FEBRIAN80/managmnt-food/entity"
	"github.com/FEBRIAN80/managmnt-food/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Menu{},
		&entity.Transaction{}, &entity.TransactionItem{},
	))
	return db
}

func newCheckout(t *testing.T) (*CheckoutService, *gorm.DB, *repository.TransactionRepository) {
	db := testDB(t)
	repo := repository.NewTransactionRepository(db)
	return NewCheckoutService(db, repo), db, repo
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestCommitRejectsEmptyCart(t *testing.T) {
	svc, db, _ := newCheckout(t)

	_, err := svc.Commit(NewCart(), 0, 1)
	assert.ErrorIs(t, err, ErrEmptyCart)

	assert.Zero(t, countRows(t, db, &entity.Transaction{}))
	assert.Zero(t, countRows(t, db, &entity.TransactionItem{}))
}

func TestCommitRejectsInvalidDiscountBeforeIO(t *testing.T) {
	svc, db, _ := newCheckout(t)

	cart := NewCart()
	cart.AddItem(menu(1, "Nasi Goreng", 25000))

	_, err := svc.Commit(cart, 150, 1)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	assert.Zero(t, countRows(t, db, &entity.Transaction{}))
	require.Len(t, cart.Lines(), 1, "cart must be left untouched")
}

func TestCommitPersistsTransactionWithItems(t *testing.T) {
	svc, db, repo := newCheckout(t)

	cart := NewCart()
	nasi := menu(1, "Nasi Goreng", 25000)
	cart.AddItem(nasi)
	cart.AddItem(nasi)
	cart.AddItem(menu(2, "Es Teh", 5000))

	txn, err := svc.Commit(cart, 10, 42)
	require.NoError(t, err)

	assert.Equal(t, int64(1), countRows(t, db, &entity.Transaction{}))
	assert.True(t, strings.HasPrefix(txn.TransactionNumber, "TRX-"))
	assert.Equal(t, int64(55000), txn.Subtotal)
	assert.Equal(t, int64(5500), txn.DiscountAmount)
	assert.Equal(t, int64(4950), txn.TaxAmount)
	assert.Equal(t, int64(54450), txn.TotalAmount)
	assert.Equal(t, PaymentMethodCash, txn.PaymentMethod)
	assert.Equal(t, uint(42), txn.CashierID)

	stored, err := repo.GetWithItems(txn.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)

	// items keep the committed order and their subtotals sum to the parent's
	assert.Equal(t, "Nasi Goreng", stored.Items[0].MenuName)
	assert.Equal(t, "Es Teh", stored.Items[1].MenuName)
	var sum int64
	for _, it := range stored.Items {
		sum += it.Subtotal
	}
	assert.Equal(t, stored.Subtotal, sum)

	// the committer never clears the cart; the caller does after success
	assert.Len(t, cart.Lines(), 2)
}

func TestCommitUnitPriceIsSnapshot(t *testing.T) {
	svc, db, repo := newCheckout(t)

	m := menu(1, "Nasi Goreng", 25000)
	cart := NewCart()
	cart.AddItem(m)

	txn, err := svc.Commit(cart, 0, 1)
	require.NoError(t, err)

	// catalog price changes after commit must not reach the stored line
	require.NoError(t, db.Create(&entity.Menu{Model: gorm.Model{ID: 1}, Name: "Nasi Goreng", Price: 99000}).Error)

	stored, err := repo.GetWithItems(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(25000), stored.Items[0].UnitPrice)
}

// A failing line write must roll the parent back: no transaction row may be
// visible without its items.
func TestCommitIsAtomicWhenItemWriteFails(t *testing.T) {
	svc, db, _ := newCheckout(t)

	require.NoError(t, db.Migrator().DropTable(&entity.TransactionItem{}))

	cart := NewCart()
	cart.AddItem(menu(1, "Nasi Goreng", 25000))

	_, err := svc.Commit(cart, 0, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommitFailed)

	assert.Zero(t, countRows(t, db, &entity.Transaction{}))
	// the cart survives for a retry
	assert.Len(t, cart.Lines(), 1)
}

func TestTransactionNumbersUniqueUnderConcurrency(t *testing.T) {
	const n = 200
	now := time.Now()

	var mu sync.Mutex
	seen := make(map[string]bool, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num := NewTransactionNumber(now)
			mu.Lock()
			seen[num] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n, "same-instant generation must not collide")
}

func TestTransactionNumberFormat(t *testing.T) {
	at := time.Date(2024, 5, 17, 13, 45, 9, 0, time.UTC)
	num := NewTransactionNumber(at)

	parts := strings.Split(num, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "TRX", parts[0])
	assert.Equal(t, "20240517134509", parts[1])
	assert.Len(t, parts[2], 8)
}
