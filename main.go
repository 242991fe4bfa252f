package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/taskhive/taskhive/api/v1"
	"github.com/taskhive/taskhive/config"
	"github.com/taskhive/taskhive/database"
	"github.com/taskhive/taskhive/handlers"
	"github.com/taskhive/taskhive/logging"
	"github.com/taskhive/taskhive/middleware"
	"github.com/taskhive/taskhive/storage"
)

func main() {
	// Load .env before anything reads configuration
	config.LoadEnv()
	logging.InitLogger(config.LogFile())

	// Connect to the database and apply migrations
	database.Initialize()

	store, err := storage.NewLocalStore(config.UploadDir())
	if err != nil {
		logging.Logger.Fatalf("Failed to prepare upload directory: %v", err)
	}
	handlers.InitUploads(store)

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "taskhive",
			"version": "1.0.0",
		})
	})

	// Stored file contents, authenticated like the rest of the API
	router.GET("/uploads/:filename", middleware.AuthMiddleware(), handlers.ServeUpload)

	// Versioned API
	api := router.Group("/api/v1")
	v1.RegisterRoutes(api, store)

	port := config.Port()
	logging.Logger.Infof("🚀 TaskHive API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logging.Logger.Fatalf("Failed to start server: %v", err)
	}
}
