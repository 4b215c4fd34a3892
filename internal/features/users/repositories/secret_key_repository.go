package users_repositories

import (
	"errors"
	"fmt"

	users_models "github.com/ssqlone/ByteStash/internal/features/users/models"
	"github.com/ssqlone/ByteStash/internal/storage"
	token_utils "github.com/ssqlone/ByteStash/internal/util/token"

	"gorm.io/gorm"
)

type SecretKeyRepository struct{}

// GetSecretKey returns the JWT signing secret, generating and persisting
// one on first use so every deployment gets its own random secret.
func (r *SecretKeyRepository) GetSecretKey() (string, error) {
	var secretKey users_models.SecretKey

	err := storage.GetDb().First(&secretKey).Error
	if err == nil {
		return secretKey.Secret, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	secret, err := token_utils.Generate()
	if err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}

	secretKey = users_models.SecretKey{Secret: secret}
	if err := storage.GetDb().Create(&secretKey).Error; err != nil {
		return "", fmt.Errorf("failed to persist secret key: %w", err)
	}

	return secretKey.Secret, nil
}
