package database

import (
	"log"
	"os"
	"time"

	"github.com/taskhive/taskhive/config"
	"github.com/taskhive/taskhive/logging"
	"github.com/taskhive/taskhive/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize sets up the GORM database connection
func Initialize() {
	dbURL := config.DatabaseURL()

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// Connect to database
	var err error
	DB, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		logging.Logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := DB.DB()
	if err != nil {
		logging.Logger.Fatalf("Failed to get SQL DB: %v", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(DB); err != nil {
		logging.Logger.Fatalf("Failed to auto migrate: %v", err)
	}

	logging.Logger.Info("Connected to database")
}

// Migrate applies the schema for every model. Exported so tests and the seed
// script can migrate an alternative connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Task{},
		&models.Comment{},
		&models.File{},
		&models.Activity{},
	)
}
