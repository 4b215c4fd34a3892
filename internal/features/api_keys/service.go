package api_keys

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ssqlone/ByteStash/internal/features/audit_logs"
	users_models "github.com/ssqlone/ByteStash/internal/features/users/models"
	cache_utils "github.com/ssqlone/ByteStash/internal/util/cache"
	token_utils "github.com/ssqlone/ByteStash/internal/util/token"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type ApiKeyService struct {
	apiKeyRepository *ApiKeyRepository
	auditLogService  *audit_logs.AuditLogService
	logger           *slog.Logger

	apiKeyCacheUtil *cache_utils.CacheUtil[CachedApiKey]
	singleflight    singleflight.Group // Prevents thundering herd on DB calls
}

var ErrApiKeyNotFound = errors.New("API key not found")

const keyPrefixDisplayLength = 8

// missCacheExpiry bounds how long an unknown-key probe occupies a cache
// entry.
const missCacheExpiry = 30 * time.Second

func (s *ApiKeyService) CreateApiKey(
	request *CreateApiKeyRequestDTO,
	creator *users_models.User,
) (*ApiKey, error) {
	fullKey, err := token_utils.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	keyPrefix := fullKey[:keyPrefixDisplayLength] + "..."

	apiKey := &ApiKey{
		ID:        uuid.New(),
		UserID:    creator.ID,
		Name:      request.Name,
		KeyPrefix: keyPrefix,
		KeyHash:   s.hashKey(fullKey),
		IsActive:  true,
	}

	if err := s.apiKeyRepository.CreateApiKey(apiKey); err != nil {
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}

	// Pre-warm cache with the new key for immediate availability
	s.apiKeyCacheUtil.Set(apiKey.KeyHash, &CachedApiKey{
		ID:       apiKey.ID,
		UserID:   apiKey.UserID,
		IsActive: apiKey.IsActive,
	})

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("API key created: %s (%s)", request.Name, keyPrefix),
		&creator.ID,
		nil,
	)

	// The plaintext key is returned exactly once; only its hash is stored.
	apiKey.Key = fullKey

	return apiKey, nil
}

func (s *ApiKeyService) GetUserApiKeys(user *users_models.User) (*GetApiKeysResponseDTO, error) {
	userKeys, err := s.apiKeyRepository.GetApiKeysByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return &GetApiKeysResponseDTO{ApiKeys: userKeys}, nil
}

func (s *ApiKeyService) DeleteApiKey(apiKeyID uuid.UUID, user *users_models.User) error {
	apiKey, err := s.apiKeyRepository.GetApiKeyByID(apiKeyID, user.ID)
	if err != nil {
		return fmt.Errorf("failed to look up API key: %w", err)
	}

	if apiKey == nil {
		return ErrApiKeyNotFound
	}

	deleted, err := s.apiKeyRepository.DeleteApiKey(apiKeyID, user.ID)
	if err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}

	if !deleted {
		return ErrApiKeyNotFound
	}

	s.apiKeyCacheUtil.Invalidate(apiKey.KeyHash)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("API key deleted: %s (%s)", apiKey.Name, apiKey.KeyPrefix),
		&user.ID,
		nil,
	)

	return nil
}

// ValidateApiKey resolves a presented plaintext key to a principal. A nil
// principal with a nil error means the key is unknown, revoked, inactive or
// malformed; callers must treat all of those identically. Every successful
// validation updates the key's last-used timestamp.
func (s *ApiKeyService) ValidateApiKey(key string) (*Principal, error) {
	if len(key) != token_utils.TokenLength*2 {
		return nil, nil
	}

	keyHash := s.hashKey(key)

	// Tier 1: cache
	if cachedKey := s.apiKeyCacheUtil.Get(keyHash); cachedKey != nil {
		if !cachedKey.IsActive {
			return nil, nil
		}

		s.touchLastUsed(cachedKey.ID)

		return &Principal{UserID: cachedKey.UserID, KeyID: cachedKey.ID}, nil
	}

	// Tier 2: database lookup with singleflight protection
	result, err, _ := s.singleflight.Do(keyHash, func() (any, error) {
		return s.apiKeyRepository.GetApiKeyByKeyHash(keyHash)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to validate API key: %w", err)
	}

	apiKey, ok := result.(*ApiKey)
	if !ok {
		return nil, errors.New("failed to cast result to ApiKey")
	}

	if apiKey == nil {
		// Cache the miss just long enough to absorb a burst of repeated
		// probes. A long TTL here would let anonymous clients fill the
		// cache with one entry per guessed key.
		s.apiKeyCacheUtil.SetWithExpiry(keyHash, &CachedApiKey{IsActive: false}, missCacheExpiry)
		return nil, nil
	}

	s.apiKeyCacheUtil.Set(keyHash, &CachedApiKey{
		ID:       apiKey.ID,
		UserID:   apiKey.UserID,
		IsActive: apiKey.IsActive,
	})

	if !apiKey.IsActive {
		return nil, nil
	}

	s.touchLastUsed(apiKey.ID)

	return &Principal{UserID: apiKey.UserID, KeyID: apiKey.ID}, nil
}

func (s *ApiKeyService) touchLastUsed(apiKeyID uuid.UUID) {
	if err := s.apiKeyRepository.TouchLastUsed(apiKeyID, time.Now().UTC()); err != nil {
		s.logger.Error("failed to update API key last-used time",
			"apiKeyId", apiKeyID.String(), "error", err)
	}
}

func (s *ApiKeyService) hashKey(key string) string {
	hasher := sha256.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}
