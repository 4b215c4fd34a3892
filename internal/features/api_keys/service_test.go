package api_keys

import (
	"strings"
	"testing"

	"github.com/ssqlone/ByteStash/internal/features/audit_logs"
	users_models "github.com/ssqlone/ByteStash/internal/features/users/models"
	users_services "github.com/ssqlone/ByteStash/internal/features/users/services"
	users_testing "github.com/ssqlone/ByteStash/internal/features/users/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUserModel(t *testing.T) *users_models.User {
	t.Helper()

	login := users_testing.CreateTestUser()
	user, err := users_services.GetUserService().GetUserByID(login.UserID)
	require.NoError(t, err)
	require.NotNil(t, user)

	return user
}

func issueTestKey(t *testing.T, user *users_models.User, name string) *ApiKey {
	t.Helper()

	apiKey, err := GetApiKeyService().CreateApiKey(&CreateApiKeyRequestDTO{Name: name}, user)
	require.NoError(t, err)

	return apiKey
}

// CreateApiKey Tests

func Test_CreateApiKey_ReturnsPlaintextSecretOnce(t *testing.T) {
	user := createTestUserModel(t)

	apiKey := issueTestKey(t, user, "CI key")

	assert.Len(t, apiKey.Key, 64)
	assert.Equal(t, apiKey.Key[:8]+"...", apiKey.KeyPrefix)
	assert.True(t, apiKey.IsActive)
	assert.NotEqual(t, apiKey.Key, apiKey.KeyHash, "stored hash must differ from the secret")

	// Subsequent listings carry metadata only.
	response, err := GetApiKeyService().GetUserApiKeys(user)
	require.NoError(t, err)
	require.Len(t, response.ApiKeys, 1)
	assert.Empty(t, response.ApiKeys[0].Key)
	assert.Equal(t, apiKey.KeyPrefix, response.ApiKeys[0].KeyPrefix)
}

func Test_CreateApiKey_AuditTrailContainsPrefixButNeverSecret(t *testing.T) {
	user := createTestUserModel(t)
	apiKey := issueTestKey(t, user, "Audited key")

	response, err := audit_logs.GetAuditLogService().GetUserAuditLogs(user.ID, &audit_logs.GetAuditLogsRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, response.AuditLogs)

	foundPrefix := false
	for _, entry := range response.AuditLogs {
		assert.NotContains(t, entry.Message, apiKey.Key)
		if strings.Contains(entry.Message, apiKey.KeyPrefix) {
			foundPrefix = true
		}
	}
	assert.True(t, foundPrefix, "audit trail should reference the key by its prefix")
}

// ValidateApiKey Tests

func Test_ValidateApiKey_WithIssuedKey_ReturnsPrincipal(t *testing.T) {
	user := createTestUserModel(t)
	apiKey := issueTestKey(t, user, "Validation key")

	principal, err := GetApiKeyService().ValidateApiKey(apiKey.Key)

	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, apiKey.ID, principal.KeyID)
}

func Test_ValidateApiKey_WithMalformedKey_ReturnsNilPrincipal(t *testing.T) {
	principal, err := GetApiKeyService().ValidateApiKey("too-short")

	require.NoError(t, err)
	assert.Nil(t, principal)
}

func Test_ValidateApiKey_WithUnknownKeyOfValidShape_ReturnsNilPrincipal(t *testing.T) {
	principal, err := GetApiKeyService().ValidateApiKey(strings.Repeat("ef", 32))

	require.NoError(t, err)
	assert.Nil(t, principal)
}

func Test_ValidateApiKey_AfterDeletion_ReturnsNilPrincipal(t *testing.T) {
	user := createTestUserModel(t)
	apiKey := issueTestKey(t, user, "Short-lived key")

	require.NoError(t, GetApiKeyService().DeleteApiKey(apiKey.ID, user))

	principal, err := GetApiKeyService().ValidateApiKey(apiKey.Key)
	require.NoError(t, err)
	assert.Nil(t, principal)
}

func Test_ValidateApiKey_UpdatesLastUsedTimestamp(t *testing.T) {
	user := createTestUserModel(t)
	apiKey := issueTestKey(t, user, "Tracked key")
	assert.Nil(t, apiKey.LastUsedAt)

	_, err := GetApiKeyService().ValidateApiKey(apiKey.Key)
	require.NoError(t, err)

	response, err := GetApiKeyService().GetUserApiKeys(user)
	require.NoError(t, err)
	require.Len(t, response.ApiKeys, 1)
	assert.NotNil(t, response.ApiKeys[0].LastUsedAt)
}

// DeleteApiKey Tests

func Test_DeleteApiKey_WhenKeyBelongsToAnotherUser_ReturnsNotFound(t *testing.T) {
	owner := createTestUserModel(t)
	stranger := createTestUserModel(t)
	apiKey := issueTestKey(t, owner, "Protected key")

	err := GetApiKeyService().DeleteApiKey(apiKey.ID, stranger)
	assert.ErrorIs(t, err, ErrApiKeyNotFound)

	// The owner's key still validates.
	principal, err := GetApiKeyService().ValidateApiKey(apiKey.Key)
	require.NoError(t, err)
	assert.NotNil(t, principal)
}
