package shares

import (
	"errors"
	"time"

	"github.com/ssqlone/ByteStash/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShareRepository struct{}

func (r *ShareRepository) CreateShare(share *Share) error {
	if share.CreatedAt.IsZero() {
		share.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(share).Error
}

// GetShareByID returns nil without an error when no such share exists.
func (r *ShareRepository) GetShareByID(shareID string) (*Share, error) {
	var share Share

	err := storage.GetDb().
		Where("id = ?", shareID).
		First(&share).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &share, nil
}

func (r *ShareRepository) GetSharesBySnippetID(snippetID uuid.UUID) ([]*Share, error) {
	var snippetShares []*Share

	err := storage.GetDb().
		Where("snippet_id = ?", snippetID).
		Order("created_at DESC").
		Find(&snippetShares).Error

	return snippetShares, err
}

// DeleteShare removes the share iff it belongs to userID; returns whether a
// row was removed.
func (r *ShareRepository) DeleteShare(shareID string, userID uuid.UUID) (bool, error) {
	result := storage.GetDb().
		Where("id = ? AND user_id = ?", shareID, userID).
		Delete(&Share{})

	return result.RowsAffected > 0, result.Error
}
