package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is loaded once at startup from the environment (.env supported
// via godotenv in main).
type Config struct {
	Port         string
	SuperAdminID string
	DatabaseURL  string // when empty, the file store is used
	DataFile     string
}

func Load() Config {
	cfg := Config{
		Port:         getenv("PORT", "8080"),
		SuperAdminID: os.Getenv("SUPER_ADMIN_ID"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DataFile:     getenv("DATA_FILE", "data/izesquad_data.json"),
	}
	if cfg.SuperAdminID == "" {
		log.Println("SUPER_ADMIN_ID not set; admin operations require a promoted moderator")
	}
	return cfg
}

// ConnectDatabase opens the Postgres connection for the snapshot store.
func ConnectDatabase(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
