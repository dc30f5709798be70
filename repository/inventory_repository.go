package repository

import (
	"strings"

	"github.com/FEBRIAN80/managmnt-food/entity"

	"gorm.io/gorm"
)

type InventoryRepository struct{ DB *gorm.DB }

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) List(q string) ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	db := r.DB.Preload("Supplier").Order("name")
	if q = strings.TrimSpace(q); q != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	err := db.Find(&out).Error
	return out, err
}

func (r *InventoryRepository) Get(id uint) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	if err := r.DB.Preload("Supplier").First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *InventoryRepository) Create(ing *entity.Ingredient) error {
	return r.DB.Create(ing).Error
}

func (r *InventoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Ingredient{}).Where("id = ?", id).Updates(updates).Error
}

// ApplyMovement records the movement and adjusts the stock level in the same
// storage transaction.
func (r *InventoryRepository) ApplyMovement(tx *gorm.DB, mv *entity.StockMovement, newStock float64) error {
	if err := tx.Create(mv).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Ingredient{}).
		Where("id = ?", mv.IngredientID).
		Update("current_stock", newStock).Error
}

func (r *InventoryRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Ingredient{}).Count(&n).Error
	return n, err
}

func (r *InventoryRepository) LowStockCount() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Ingredient{}).
		Where("current_stock <= min_stock").
		Count(&n).Error
	return n, err
}

func (r *InventoryRepository) ListSuppliers() ([]entity.Supplier, error) {
	var out []entity.Supplier
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}

func (r *InventoryRepository) CreateSupplier(sp *entity.Supplier) error {
	return r.DB.Create(sp).Error
}
