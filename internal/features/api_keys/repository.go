package api_keys

import (
	"errors"
	"time"

	"github.com/ssqlone/ByteStash/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApiKeyRepository struct{}

func (r *ApiKeyRepository) CreateApiKey(apiKey *ApiKey) error {
	if apiKey.ID == uuid.Nil {
		apiKey.ID = uuid.New()
	}

	if apiKey.CreatedAt.IsZero() {
		apiKey.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(apiKey).Error
}

func (r *ApiKeyRepository) GetApiKeysByUserID(userID uuid.UUID) ([]*ApiKey, error) {
	var userKeys []*ApiKey

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&userKeys).Error

	return userKeys, err
}

// GetApiKeyByKeyHash returns nil without an error when no key matches; the
// caller must not be able to tell an absent key from an inactive one.
func (r *ApiKeyRepository) GetApiKeyByKeyHash(keyHash string) (*ApiKey, error) {
	var apiKey ApiKey

	err := storage.GetDb().
		Where("key_hash = ?", keyHash).
		First(&apiKey).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &apiKey, nil
}

// GetApiKeyByID returns the key only when it belongs to userID; nil
// otherwise, so ownership failures are indistinguishable from absence.
func (r *ApiKeyRepository) GetApiKeyByID(apiKeyID, userID uuid.UUID) (*ApiKey, error) {
	var apiKey ApiKey

	err := storage.GetDb().
		Where("id = ? AND user_id = ?", apiKeyID, userID).
		First(&apiKey).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &apiKey, nil
}

// TouchLastUsed records a successful validation. Concurrent validations of
// the same key race on this column; the timestamp is advisory, so last
// write wins.
func (r *ApiKeyRepository) TouchLastUsed(apiKeyID uuid.UUID, usedAt time.Time) error {
	return storage.GetDb().
		Model(&ApiKey{}).
		Where("id = ?", apiKeyID).
		Update("last_used_at", usedAt).Error
}

// DeleteApiKey removes the key iff it belongs to userID. Returns whether a
// row was removed so revoking someone else's key looks exactly like
// revoking a nonexistent one.
func (r *ApiKeyRepository) DeleteApiKey(apiKeyID, userID uuid.UUID) (bool, error) {
	result := storage.GetDb().
		Where("id = ? AND user_id = ?", apiKeyID, userID).
		Delete(&ApiKey{})

	return result.RowsAffected > 0, result.Error
}
