package shares

import (
	"time"

	"github.com/google/uuid"
)

// Share is a capability token for exactly one snippet. The id doubles as
// the secret: it goes straight into the public URL, so it carries the same
// entropy as an API key.
type Share struct {
	ID           string     `json:"id"           gorm:"column:id;primaryKey"`
	SnippetID    uuid.UUID  `json:"snippetId"    gorm:"column:snippet_id"`
	UserID       uuid.UUID  `json:"userId"       gorm:"column:user_id"`
	RequiresAuth bool       `json:"requiresAuth" gorm:"column:requires_auth"`
	ExpiresAt    *time.Time `json:"expiresAt"    gorm:"column:expires_at"`
	CreatedAt    time.Time  `json:"createdAt"    gorm:"column:created_at"`
}

func (Share) TableName() string {
	return "shares"
}

// ExpiredAt reports whether the share is expired at the given instant.
// The boundary is inclusive: a share dies exactly at its expiry timestamp.
// Expiry is always derived from stored state at read time, never cached.
func (s *Share) ExpiredAt(now time.Time) bool {
	return s.ExpiresAt != nil && !s.ExpiresAt.After(now)
}
