package config

import (
	"os"
)

type Config struct {
	DatabaseURL       string
	Port              string
	AdminDefaultName  string
	AdminDefaultEmail string
	AdminDefaultPass  string
}

func Load() Config {
	return Config{
		DatabaseURL:       getenv("DATABASE_URL", "rental:rental@tcp(db:3306)/car_rental?parseTime=true&charset=utf8mb4"),
		Port:              getenv("PORT", "5000"),
		AdminDefaultName:  getenv("ADMIN_DEFAULT_NAME", "Admin"),
		AdminDefaultEmail: os.Getenv("ADMIN_DEFAULT_EMAIL"),
		AdminDefaultPass:  os.Getenv("ADMIN_DEFAULT_PASSWORD"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
