package repository

import (
	"strings"

	"github.com/FEBRIAN80/managmnt-food/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// ListAvailable is the cashier catalog: available menus ordered by name,
// optionally filtered by a case-insensitive name substring.
func (r *MenuRepository) ListAvailable(q string) ([]entity.Menu, error) {
	var menus []entity.Menu
	db := r.DB.Preload("Category").
		Where("is_available = ?", true).
		Order("name")
	if q = strings.TrimSpace(q); q != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	err := db.Find(&menus).Error
	return menus, err
}

// ListAll is the admin view, unavailable menus included.
func (r *MenuRepository) ListAll() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Preload("Category").Order("name").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) Get(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("name").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}
