package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/models"
	"github.com/cppla/qaserver/repository"
	"github.com/cppla/qaserver/utils"
)

// UserStore is the storage contract the user service depends on.
type UserStore interface {
	Create(db *gorm.DB, id uuid.UUID, username, email, passwordHash string) (*models.User, error)
	GetByID(db *gorm.DB, id uuid.UUID) (*models.User, error)
	GetAll(db *gorm.DB, offset, limit int) ([]models.User, int64, error)
	Delete(db *gorm.DB, user *models.User) error
}

// UserService holds user business logic.
type UserService struct {
	db    *gorm.DB
	users UserStore
}

// NewUserService creates a UserService.
func NewUserService(db *gorm.DB, users UserStore) *UserService {
	return &UserService{db: db, users: users}
}

// CreateUser registers a user. The password is stored as a bcrypt hash.
func (s *UserService) CreateUser(ctx context.Context, payload UserCreate) (*UserResponse, error) {
	id := uuid.New()
	if payload.ID != "" {
		parsed, err := ParseUserID(payload.ID)
		if err != nil {
			return nil, err
		}
		id = parsed
	}
	username, err := cleanText("username", payload.Username)
	if err != nil {
		return nil, err
	}
	email, err := cleanEmail(payload.Email)
	if err != nil {
		return nil, err
	}
	if err := checkPassword(payload.Password); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *models.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := s.users.Create(tx, id, username, email, hash)
		if err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Sugar.Debugw("user created", "user_id", created.ID.String())
	resp := newUserResponse(created)
	return &resp, nil
}

// GetUser returns one user.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.users.GetByID(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errorz.NotFound("User with id %s not found", id)
	}
	resp := newUserResponse(user)
	return &resp, nil
}

// GetAllUsers returns one page of users.
func (s *UserService) GetAllUsers(ctx context.Context, offset, limit int) (*Pagination[UserResponse], error) {
	page := repository.Clamp(offset, limit)

	rows, total, err := s.users.GetAll(s.db.WithContext(ctx), page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]UserResponse, 0, len(rows))
	for i := range rows {
		items = append(items, newUserResponse(&rows[i]))
	}
	return &Pagination[UserResponse]{
		Total:  total,
		Items:  items,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// DeleteUser removes a user. It fails with Conflict while the user still has answers.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.users.GetByID(tx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return errorz.NotFound("User with id %s not found", id)
		}
		return s.users.Delete(tx, user)
	})
	if err != nil {
		return err
	}
	utils.Sugar.Debugw("user deleted", "user_id", id.String())
	return nil
}
