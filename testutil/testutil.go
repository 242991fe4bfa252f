// Package testutil wires tests to a throwaway in-memory database and offers
// shorthand constructors for the common fixtures.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskhive/taskhive/database"
	"github.com/taskhive/taskhive/models"
)

// SetupDB points the global database handle at a fresh in-memory store with
// the schema applied. The previous handle comes back when the test ends.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// In-memory sqlite gives every connection its own database, keep the
	// pool at a single connection so all queries see the same data.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database pool: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

// CreateUser inserts a user with a throwaway password hash
func CreateUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: "x",
		Name:     username,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

// CreateProject inserts an active project owned by the given user
func CreateProject(t *testing.T, db *gorm.DB, name, ownerID string) models.Project {
	t.Helper()
	project := models.Project{
		Name:    name,
		Status:  models.ProjectStatusActive,
		OwnerID: ownerID,
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project %s: %v", name, err)
	}
	return project
}

// CreateTask inserts a task into the given project
func CreateTask(t *testing.T, db *gorm.DB, title, projectID, creatorID string, status models.TaskStatus) models.Task {
	t.Helper()
	task := models.Task{
		Title:     title,
		Status:    status,
		ProjectID: projectID,
		CreatorID: creatorID,
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("failed to create task %s: %v", title, err)
	}
	return task
}
