package snippets

import (
	"errors"
	"time"

	"github.com/ssqlone/ByteStash/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SnippetRepository struct{}

func (r *SnippetRepository) CreateSnippet(snippet *Snippet) error {
	if snippet.ID == uuid.Nil {
		snippet.ID = uuid.New()
	}

	now := time.Now().UTC()
	if snippet.CreatedAt.IsZero() {
		snippet.CreatedAt = now
	}
	snippet.UpdatedAt = now

	for i := range snippet.Fragments {
		if snippet.Fragments[i].ID == uuid.Nil {
			snippet.Fragments[i].ID = uuid.New()
		}
		snippet.Fragments[i].SnippetID = snippet.ID
	}

	return storage.GetDb().Create(snippet).Error
}

// GetSnippetByID returns nil without an error when no such snippet exists.
func (r *SnippetRepository) GetSnippetByID(snippetID uuid.UUID) (*Snippet, error) {
	var snippet Snippet

	err := storage.GetDb().
		Preload("Fragments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", snippetID).
		First(&snippet).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &snippet, nil
}

func (r *SnippetRepository) GetSnippetsByUserID(userID uuid.UUID) ([]*Snippet, error) {
	var userSnippets []*Snippet

	err := storage.GetDb().
		Preload("Fragments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&userSnippets).Error

	return userSnippets, err
}

// DeleteSnippet removes the snippet iff it belongs to userID; fragments and
// share links go with it via ON DELETE CASCADE. Returns whether a row was
// removed.
func (r *SnippetRepository) DeleteSnippet(snippetID, userID uuid.UUID) (bool, error) {
	result := storage.GetDb().
		Where("id = ? AND user_id = ?", snippetID, userID).
		Delete(&Snippet{})

	return result.RowsAffected > 0, result.Error
}
