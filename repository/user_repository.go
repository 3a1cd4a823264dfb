package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/models"
)

// UserRepository issues statements against the users table.
type UserRepository struct{}

// NewUserRepository creates a UserRepository.
func NewUserRepository() UserRepository {
	return UserRepository{}
}

// Create inserts a user. A duplicate email or identifier is a Conflict.
func (UserRepository) Create(db *gorm.DB, id uuid.UUID, username, email, passwordHash string) (*models.User, error) {
	user := models.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, userWriteError(err, &user)
	}
	return &user, nil
}

// GetByID returns the user or nil when it does not exist.
func (UserRepository) GetByID(db *gorm.DB, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load user %s: %w", id, err)
	}
	return &user, nil
}

// GetAll returns one clamped page of users ordered by creation time and the total number of users.
func (UserRepository) GetAll(db *gorm.DB, offset, limit int) ([]models.User, int64, error) {
	page := Clamp(offset, limit)

	var users []models.User
	if err := db.Order("created_at ASC").Order("id ASC").Offset(page.Offset).Limit(page.Limit).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	return users, total, nil
}

// Delete removes the user. The engine rejects it while answers still reference the user.
func (UserRepository) Delete(db *gorm.DB, user *models.User) error {
	res := db.Where("id = ?", user.ID).Delete(&models.User{})
	if res.Error != nil {
		return userWriteError(res.Error, user)
	}
	if res.RowsAffected == 0 {
		return errorz.NotFound("User with id %s not found", user.ID)
	}
	return nil
}

// userWriteError is the single translation point from raw integrity failures on users.
func userWriteError(err error, user *models.User) error {
	kind, constraint := inspect(err)
	switch kind {
	case uniqueViolation:
		if strings.Contains(strings.ToLower(constraint), "email") {
			return errorz.Conflict(err, "User with email %s already exists", user.Email)
		}
		return errorz.Conflict(err, "User with id %s already exists", user.ID)
	case foreignKeyViolation:
		return errorz.Conflict(err, "User with id %s still has answers", user.ID)
	default:
		return fmt.Errorf("write user %s: %w", user.ID, err)
	}
}
