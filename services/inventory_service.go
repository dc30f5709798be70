package services

import (
	"errors"

	"github.com/FEBRIAN80/managmnt-food/entity"
	"github.com/FEBRIAN80/managmnt-food/repository"

	"gorm.io/gorm"
)

type InventoryService struct {
	DB   *gorm.DB
	Repo *repository.InventoryRepository
}

func NewInventoryService(db *gorm.DB, repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{DB: db, Repo: repo}
}

type StockMovementIn struct {
	Type     string  `json:"type" binding:"required,oneof=in out"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Reason   string  `json:"reason"`
}

func (s *InventoryService) List(q string) ([]entity.Ingredient, error) {
	return s.Repo.List(q)
}

func (s *InventoryService) Create(ing *entity.Ingredient) error {
	if ing.Name == "" || ing.Unit == "" {
		return errors.New("name and unit are required")
	}
	ing.CurrentStock = 0
	return s.Repo.Create(ing)
}

func (s *InventoryService) Update(id uint, updates map[string]any) error {
	return s.Repo.Update(id, updates)
}

// Move records a manual stock movement. An "out" movement may never drive the
// stock level negative.
func (s *InventoryService) Move(ingredientID uint, in *StockMovementIn) (*entity.Ingredient, error) {
	ing, err := s.Repo.Get(ingredientID)
	if err != nil {
		return nil, err
	}

	newStock := ing.CurrentStock
	switch in.Type {
	case "in":
		newStock += in.Quantity
	case "out":
		newStock -= in.Quantity
		if newStock < 0 {
			return nil, ErrStockInsufficient
		}
	default:
		return nil, errors.New("invalid movement type")
	}

	mv := &entity.StockMovement{
		IngredientID:  ing.ID,
		Type:          in.Type,
		Quantity:      in.Quantity,
		Reason:        in.Reason,
		ReferenceType: "manual",
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.ApplyMovement(tx, mv, newStock)
	})
	if err != nil {
		return nil, err
	}
	ing.CurrentStock = newStock
	return ing, nil
}

func (s *InventoryService) ListSuppliers() ([]entity.Supplier, error) {
	return s.Repo.ListSuppliers()
}

func (s *InventoryService) CreateSupplier(sp *entity.Supplier) error {
	if sp.Name == "" {
		return errors.New("name is required")
	}
	return s.Repo.CreateSupplier(sp)
}
