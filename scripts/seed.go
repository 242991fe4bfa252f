package main

import (
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/config"
	"github.com/taskhive/taskhive/database"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/utils"
)

// Seeds the database with an admin account and, when the store is empty, a
// small demo workspace. Run with: go run scripts/seed.go
func main() {
	config.LoadEnv()

	log.Println("Starting database seed...")
	database.Initialize()
	db := database.DB

	admin := ensureAdmin(db)

	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to inspect projects: %v", err)
	}
	if count > 0 {
		log.Println("Projects already present, skipping demo data")
		return
	}

	seedDemoWorkspace(db, admin)
	log.Println("Database seed completed successfully!")
}

func ensureAdmin(db *gorm.DB) models.User {
	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		log.Println("Admin account already exists")
		return admin
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up admin account: %v", err)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("SEED_ADMIN_PASSWORD not set, using default password")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin = models.User{
		Username: "admin",
		Password: hashed,
		Name:     "Administrator",
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}
	log.Println("Created admin account")
	return admin
}

func seedDemoWorkspace(db *gorm.DB, admin models.User) {
	password, err := utils.HashPassword("demo1234")
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	lead := models.User{Username: "demo.lead", Password: password, Name: "Dana Lead", Role: models.RoleTeamLeader}
	member := models.User{Username: "demo.member", Password: password, Name: "Milo Member", Role: models.RoleMember}
	for _, u := range []*models.User{&lead, &member} {
		if err := db.Create(u).Error; err != nil {
			log.Fatalf("Failed to create demo user %s: %v", u.Username, err)
		}
	}

	deadline := time.Now().AddDate(0, 1, 0)
	project := models.Project{
		Name:     "Website Relaunch",
		Status:   models.ProjectStatusActive,
		Deadline: &deadline,
		OwnerID:  lead.ID,
	}
	if err := db.Create(&project).Error; err != nil {
		log.Fatalf("Failed to create demo project: %v", err)
	}
	if err := db.Create(&models.ProjectMember{ProjectID: project.ID, UserID: member.ID}).Error; err != nil {
		log.Fatalf("Failed to add demo member: %v", err)
	}

	completedAt := time.Now().AddDate(0, 0, -2)
	soon := time.Now().AddDate(0, 0, 3)
	tasks := []models.Task{
		{Title: "Draft new landing page", Status: models.TaskStatusInProgress, ProjectID: project.ID, CreatorID: lead.ID, AssigneeID: &member.ID, Deadline: &soon},
		{Title: "Collect brand assets", Status: models.TaskStatusCompleted, ProjectID: project.ID, CreatorID: lead.ID, AssigneeID: &member.ID, CompletedAt: &completedAt},
		{Title: "Set up staging environment", Status: models.TaskStatusTodo, ProjectID: project.ID, CreatorID: admin.ID},
	}
	for i := range tasks {
		if err := db.Create(&tasks[i]).Error; err != nil {
			log.Fatalf("Failed to create demo task: %v", err)
		}
	}

	log.Printf("Created demo workspace: project %q with %d tasks", project.Name, len(tasks))
}
