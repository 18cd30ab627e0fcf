package routes

import (
	"looncamp/controllers"
	middlewares "looncamp/middleware"
	"looncamp/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	propertyController := controllers.NewPropertyController(db, redisCli)
	authController := controllers.NewAuthController(db)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.DELETE("/auth/logout", authController.Logout)
	v1.GET("/profile", authController.GetProfile)

	// public website
	v1.GET("/propertyUser", propertyController.GetAllPropertiesForUser)
	v1.GET("/propertySlug/:slug", propertyController.GetPropertyBySlug)

	// admin panel
	v1.GET("/property", middlewares.AuthMiddleware(models.RoleAdmin), propertyController.GetAllProperties)
	v1.GET("/property/:id", middlewares.AuthMiddleware(models.RoleAdmin), propertyController.GetPropertyDetail)
	v1.POST("/property", middlewares.AuthMiddleware(models.RoleAdmin), propertyController.CreateProperty)
	v1.PUT("/propertyUpdate", middlewares.AuthMiddleware(models.RoleAdmin), propertyController.UpdateProperty)
	v1.PUT("/propertyStatus", middlewares.AuthMiddleware(models.RoleAdmin), propertyController.ChangePropertyStatus)
	v1.DELETE("/property/:id", middlewares.AuthMiddleware(models.RoleAdmin), propertyController.DeleteProperty)
}
