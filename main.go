package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"looncamp/config"
	"looncamp/jobs"
	"looncamp/migration"
	"looncamp/models"
	"looncamp/routes"
	"looncamp/services"
	"looncamp/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateSchema() {
	if err := config.DB.AutoMigrate(&models.Property{}, &models.PropertyImage{}, &models.User{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

// seedAdminUser creates the first operator account from the environment.
// There is no registration endpoint, so a fresh deployment needs this once.
func seedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil || count > 0 {
		return
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Admin",
		Email:    email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Println("Seeded admin user " + email)
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateSchema()
	seedAdminUser()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	propertyService := services.NewPropertyService(services.PropertyServiceOptions{
		DB:     config.DB,
		Redis:  config.RedisClient,
		Logger: appLogger,
	})
	jobs.SetListingCacheRefresher(propertyService)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	// One-shot seed import, run manually by an operator who watches the logs.
	if os.Getenv("MIGRATE_SEED") == "1" {
		migrated := migration.Run(context.Background(), config.DB, appLogger)
		log.Printf("Seed migration finished, %d properties migrated", migrated)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
