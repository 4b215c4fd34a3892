package api_keys

import (
	"time"

	"github.com/google/uuid"
)

type ApiKey struct {
	ID         uuid.UUID  `json:"id"         gorm:"column:id"`
	UserID     uuid.UUID  `json:"userId"     gorm:"column:user_id"`
	Name       string     `json:"name"       gorm:"column:name"`
	KeyPrefix  string     `json:"keyPrefix"  gorm:"column:key_prefix"`
	KeyHash    string     `json:"-"          gorm:"column:key_hash"` // Never expose in JSON
	IsActive   bool       `json:"isActive"   gorm:"column:is_active"`
	CreatedAt  time.Time  `json:"createdAt"  gorm:"column:created_at"`
	LastUsedAt *time.Time `json:"lastUsedAt" gorm:"column:last_used_at"`

	Key string `json:"key,omitempty" gorm:"-"` // Temporary field only populated during creation
}

func (ApiKey) TableName() string {
	return "api_keys"
}
