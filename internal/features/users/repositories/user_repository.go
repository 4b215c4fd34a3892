package users_repositories

import (
	"errors"
	"time"

	users_models "github.com/ssqlone/ByteStash/internal/features/users/models"
	"github.com/ssqlone/ByteStash/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(user).Error
}

// GetUserByID returns nil without an error when no such user exists.
func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	err := storage.GetDb().
		Where("id = ?", userID).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserByUsername returns nil without an error when no such user exists.
func (r *UserRepository) GetUserByUsername(username string) (*users_models.User, error) {
	var user users_models.User

	err := storage.GetDb().
		Where("username = ?", username).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
