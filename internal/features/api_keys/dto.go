package api_keys

import (
	"github.com/google/uuid"
)

type CreateApiKeyRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type GetApiKeysResponseDTO struct {
	ApiKeys []*ApiKey `json:"apiKeys"`
}

// Principal is the identity a validated API key resolves to.
type Principal struct {
	UserID uuid.UUID `json:"userId"`
	KeyID  uuid.UUID `json:"keyId"`
}

type CachedApiKey struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	IsActive bool      `json:"isActive"`
}
