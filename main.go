package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/config"
	"github.com/feastly/ordering-app/database"
	"github.com/feastly/ordering-app/middlewares"
	"github.com/feastly/ordering-app/models"
	"github.com/feastly/ordering-app/router"
	"github.com/feastly/ordering-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.SeedDefaults(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed defaults: %v", err)
	}

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Item{},
		&models.ItemSize{},
		&models.AddOn{},
		&models.Offer{},
		&models.OfferRedemption{},
		&models.StoreClosure{},
		&models.ScheduleDay{},
		&models.Holiday{},
		&models.Location{},
		&models.Setting{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemAddOn{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
