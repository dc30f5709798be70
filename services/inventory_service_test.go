package services

import (
	"fmt"
	"testing"

	"github.com/FEBRIAN80/managmnt-food/entity"
	"github.com/FEBRIAN80/managmnt-food/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newInventory(t *testing.T) (*InventoryService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Supplier{}, &entity.Ingredient{}, &entity.StockMovement{}))
	return NewInventoryService(db, repository.NewInventoryRepository(db)), db
}

func TestMoveInIncreasesStock(t *testing.T) {
	svc, db := newInventory(t)

	ing := entity.Ingredient{Name: "Beras", Unit: "kg", CurrentStock: 10, MinStock: 2}
	require.NoError(t, db.Create(&ing).Error)

	got, err := svc.Move(ing.ID, &StockMovementIn{Type: "in", Quantity: 5, Reason: "restock"})
	require.NoError(t, err)
	assert.Equal(t, 15.0, got.CurrentStock)

	var mv entity.StockMovement
	require.NoError(t, db.First(&mv).Error)
	assert.Equal(t, "in", mv.Type)
	assert.Equal(t, "manual", mv.ReferenceType)
}

func TestMoveOutCannotGoNegative(t *testing.T) {
	svc, db := newInventory(t)

	ing := entity.Ingredient{Name: "Telur", Unit: "kg", CurrentStock: 3, MinStock: 1}
	require.NoError(t, db.Create(&ing).Error)

	_, err := svc.Move(ing.ID, &StockMovementIn{Type: "out", Quantity: 5})
	assert.ErrorIs(t, err, ErrStockInsufficient)

	// nothing recorded, stock unchanged
	var n int64
	db.Model(&entity.StockMovement{}).Count(&n)
	assert.Zero(t, n)

	var fresh entity.Ingredient
	require.NoError(t, db.First(&fresh, ing.ID).Error)
	assert.Equal(t, 3.0, fresh.CurrentStock)
}

func TestSuppliersCreateAndList(t *testing.T) {
	svc, _ := newInventory(t)

	require.NoError(t, svc.CreateSupplier(&entity.Supplier{Name: "Pasar Induk", Phone: "0811-000-111"}))
	require.NoError(t, svc.CreateSupplier(&entity.Supplier{Name: "Agen Beras"}))

	assert.Error(t, svc.CreateSupplier(&entity.Supplier{}), "a supplier needs a name")

	out, err := svc.ListSuppliers()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Agen Beras", out[0].Name) // sorted by name
	assert.Equal(t, "Pasar Induk", out[1].Name)
}

func TestIngredientCanReferenceSupplier(t *testing.T) {
	svc, db := newInventory(t)

	sp := entity.Supplier{Name: "Pasar Induk"}
	require.NoError(t, svc.CreateSupplier(&sp))

	ing := entity.Ingredient{Name: "Beras", Unit: "kg", MinStock: 5, SupplierID: &sp.ID}
	require.NoError(t, svc.Create(&ing))

	var fresh entity.Ingredient
	require.NoError(t, db.Preload("Supplier").First(&fresh, ing.ID).Error)
	require.NotNil(t, fresh.Supplier)
	assert.Equal(t, "Pasar Induk", fresh.Supplier.Name)
}

func TestCreateStartsWithZeroStock(t *testing.T) {
	svc, _ := newInventory(t)

	ing := entity.Ingredient{Name: "Teh", Unit: "box", CurrentStock: 99, MinStock: 1}
	require.NoError(t, svc.Create(&ing))
	assert.Zero(t, ing.CurrentStock)
}
