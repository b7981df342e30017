package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"izesquad-api/cache"
	"izesquad-api/club"
	"izesquad-api/config"
	"izesquad-api/cron"
	"izesquad-api/handlers"
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

	c := club.New(snapshots, cfg.SuperAdminID)

	scheduler := cron.NewScheduler(c)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer scheduler.Stop()

	r := gin.Default()
	r.Use(cors.Default())

	playerHandler := handlers.NewPlayerHandler(c)
	matchHandler := handlers.NewMatchHandler(c)
	adminHandler := handlers.NewAdminHandler(c)
	dashboardHandler := handlers.NewDashboardHandler(c, cache.New())

	r.GET("/health", dashboardHandler.Health)

	api := r.Group("/api")
	{
		api.POST("/login", playerHandler.Login)
		api.GET("/dashboard", dashboardHandler.Dashboard)
		api.GET("/player/:id", playerHandler.Profile)

		api.POST("/checkin", playerHandler.CheckIn)
		api.POST("/checkout", playerHandler.CheckOut)
		api.POST("/rest/toggle", playerHandler.ToggleRest)
		api.POST("/rest/auto", playerHandler.ToggleAutoRest)

		api.POST("/pair/request", playerHandler.RequestPartner)
		api.POST("/pair/respond", playerHandler.RespondPartner)
		api.POST("/pair/cancel", playerHandler.CancelPartner)
		api.GET("/pair/inbox", playerHandler.Inbox)

		api.POST("/match/fill", matchHandler.FillCourt)
		api.POST("/match/fill-all", matchHandler.FillAll)
		api.POST("/match/manual", matchHandler.Manual)
		api.POST("/match/cancel", matchHandler.Cancel)
		api.POST("/match/result", matchHandler.SubmitResult)

		api.POST("/admin/session", adminHandler.Session)
		api.POST("/admin/courts", adminHandler.SetCourts)
		api.POST("/admin/automatch", adminHandler.AutoMatch)
		api.POST("/admin/rating", adminHandler.SetRating)
		api.POST("/admin/mod", adminHandler.ManageMod)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
