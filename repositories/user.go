package repositories

import (
	"github.com/taskhive/taskhive/database"
	"github.com/taskhive/taskhive/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	err := database.DB.Where("id = ?", id).First(&user).Error
	return user, err
}

// FindByUsername retrieves a user by username
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := database.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

// FindByIDs retrieves all users matching the given IDs in a single query.
// Duplicate IDs are collapsed and IDs with no matching row are skipped, so
// the result may be shorter than the input.
func (r *UserRepository) FindByIDs(ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return []models.User{}, nil
	}
	var users []models.User
	err := database.DB.Where("id IN ?", unique).Find(&users).Error
	return users, err
}

// FindAll retrieves all users, optionally filtered by role
func (r *UserRepository) FindAll(role string) ([]models.User, error) {
	var users []models.User
	query := database.DB.Order("name ASC")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	err := query.Find(&users).Error
	return users, err
}

// Create inserts a new user
func (r *UserRepository) Create(user *models.User) error {
	return database.DB.Create(user).Error
}

// Update persists changes to an existing user
func (r *UserRepository) Update(user *models.User) error {
	return database.DB.Save(user).Error
}
