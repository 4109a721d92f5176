package main

import (
	"log"

	"github.com/carhive/rental-api/internal/config"
	"github.com/carhive/rental-api/internal/db"
	"github.com/carhive/rental-api/internal/handlers"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	d, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer d.Close()

	if err := db.EnsureSchema(d); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	// Seed default admin (optional)
	if cfg.AdminDefaultEmail != "" && cfg.AdminDefaultPass != "" {
		if err := db.EnsureDefaultAdmin(d, cfg.AdminDefaultName, cfg.AdminDefaultEmail, cfg.AdminDefaultPass); err != nil {
			log.Printf("ensure default admin: %v", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	r := handlers.Router(d)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	_ = r.Run(addr)
}
