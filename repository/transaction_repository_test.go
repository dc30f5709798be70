package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/FEBRIAN80/managmnt-food/entity"

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
		&entity.User{}, &entity.Transaction{}, &entity.TransactionItem{},
	))
	return db
}

func seedTxn(t *testing.T, db *gorm.DB, number string, total int64, createdAt time.Time) {
	t.Helper()
	txn := entity.Transaction{
		TransactionNumber: number,
		TotalAmount:       total,
		PaymentMethod:     "cash",
		CashierID:         1,
	}
	require.NoError(t, db.Create(&txn).Error)
	require.NoError(t, db.Model(&entity.Transaction{}).
		Where("id = ?", txn.ID).
		Update("created_at", createdAt).Error)
}

func TestListRecentNewestFirst(t *testing.T) {
	db := testDB(t)
	repo := NewTransactionRepository(db)
	now := time.Now()

	seedTxn(t, db, "TRX-A", 10000, now.Add(-2*time.Hour))
	seedTxn(t, db, "TRX-B", 20000, now.Add(-1*time.Hour))
	seedTxn(t, db, "TRX-C", 30000, now)

	out, err := repo.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "TRX-C", out[0].TransactionNumber)
	assert.Equal(t, "TRX-B", out[1].TransactionNumber)
}

func TestSalesSinceSumsOnlyNewerTransactions(t *testing.T) {
	db := testDB(t)
	repo := NewTransactionRepository(db)
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	seedTxn(t, db, "TRX-OLD", 99999, startOfDay.Add(-time.Hour)) // yesterday
	seedTxn(t, db, "TRX-1", 49500, startOfDay.Add(time.Hour))
	seedTxn(t, db, "TRX-2", 11000, startOfDay.Add(2*time.Hour))

	sales, count, err := repo.SalesSince(startOfDay)
	require.NoError(t, err)
	assert.Equal(t, int64(60500), sales)
	assert.Equal(t, int64(2), count)
}

func TestSalesSinceEmpty(t *testing.T) {
	db := testDB(t)
	repo := NewTransactionRepository(db)

	sales, count, err := repo.SalesSince(time.Now())
	require.NoError(t, err)
	assert.Zero(t, sales)
	assert.Zero(t, count)
}
