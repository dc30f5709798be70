package configs

import (
	"log"

	"github.com/FEBRIAN80/managmnt-food/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		FullName: "Administrator",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog fills empty lookup data so a fresh install has something to sell.
func SeedCatalog() error {
	db := DB()

	makanan := entity.Category{Name: "Makanan"}
	minuman := entity.Category{Name: "Minuman"}
	db.FirstOrCreate(&makanan, entity.Category{Name: "Makanan"})
	db.FirstOrCreate(&minuman, entity.Category{Name: "Minuman"})

	var menus int64
	db.Model(&entity.Menu{}).Count(&menus)
	if menus == 0 {
		db.Create(&[]entity.Menu{
			{Name: "Nasi Goreng", Detail: "Nasi goreng spesial", Price: 25000, IsAvailable: true, CategoryID: makanan.ID},
			{Name: "Mie Goreng", Detail: "Mie goreng telur", Price: 22000, IsAvailable: true, CategoryID: makanan.ID},
			{Name: "Ayam Bakar", Detail: "Ayam bakar kecap", Price: 30000, IsAvailable: true, CategoryID: makanan.ID},
			{Name: "Es Teh", Detail: "", Price: 5000, IsAvailable: true, CategoryID: minuman.ID},
			{Name: "Es Jeruk", Detail: "", Price: 8000, IsAvailable: true, CategoryID: minuman.ID},
		})
	}

	var ingredients int64
	db.Model(&entity.Ingredient{}).Count(&ingredients)
	if ingredients == 0 {
		db.Create(&[]entity.Ingredient{
			{Name: "Beras", Unit: "kg", CurrentStock: 50, MinStock: 10, CostPerUnit: 12000},
			{Name: "Telur", Unit: "kg", CurrentStock: 20, MinStock: 5, CostPerUnit: 28000},
			{Name: "Teh", Unit: "box", CurrentStock: 12, MinStock: 3, CostPerUnit: 9000},
		})
	}

	return nil
}
