package configs

import (
	"log"
	"os"
	"time"

	"github.com/FEBRIAN80/managmnt-food/services"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	Business services.BusinessInfo
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "pos.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(24) * time.Hour,
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Business: services.BusinessInfo{
			Name:    getEnv("BUSINESS_NAME", "RESTORAN APP"),
			Address: getEnv("BUSINESS_ADDRESS", "Jl. Contoh No. 123, Jakarta"),
			Phone:   getEnv("BUSINESS_PHONE", "Telp: (021) 1234567"),
			Footer:  getEnv("RECEIPT_FOOTER", "Terima kasih atas kunjungan Anda!"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
