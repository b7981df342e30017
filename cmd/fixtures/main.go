package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"izesquad-api/club"
	"izesquad-api/config"
	"izesquad-api/fixtures"
	"izesquad-api/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	var snapshots club.Store
	if cfg.DatabaseURL != "" {
		db, err := config.ConnectDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		snapshots, err = store.NewGormStore(db)
		if err != nil {
			log.Fatalf("snapshot store: %v", err)
		}
	} else {
		snapshots = store.NewFileStore(cfg.DataFile)
	}
	manager := fixtures.NewFixtures(snapshots)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "generate":
		if err := manager.GenerateDemoData(); err != nil {
			log.Fatal("Failed to generate fixtures:", err)
		}
		fmt.Println("Fixtures generated successfully!")
	case "clear":
		if err := manager.ClearAllData(); err != nil {
			log.Fatal("Failed to clear fixtures:", err)
		}
		fmt.Println("All fixture data cleared!")
	case "regenerate":
		if err := manager.ClearAllData(); err != nil {
			log.Fatal("Failed to clear fixtures:", err)
		}
		if err := manager.GenerateDemoData(); err != nil {
			log.Fatal("Failed to generate fixtures:", err)
		}
		fmt.Println("Fixtures regenerated successfully!")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate    - Seed a demo roster and match history")
	fmt.Println("  go run ./cmd/fixtures clear       - Reset the snapshot to an empty world")
	fmt.Println("  go run ./cmd/fixtures regenerate  - Clear and reseed")
}
