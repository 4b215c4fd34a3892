package api_keys

import (
	"net/http"
	"testing"

	users_testing "github.com/ssqlone/ByteStash/internal/features/users/testing"
	test_utils "github.com/ssqlone/ByteStash/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// CreateApiKey Tests

func Test_CreateApiKey_ViaAPI_ReturnsKeyWithSecret(t *testing.T) {
	router := CreateApiKeyTestRouter()
	owner := users_testing.CreateTestUser()

	var response ApiKey
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/api-keys",
		"Bearer "+owner.Token,
		CreateApiKeyRequestDTO{Name: "Deploy key"},
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "Deploy key", response.Name)
	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.Len(t, response.Key, 64)
	assert.Contains(t, response.KeyPrefix, "...")
	assert.True(t, response.IsActive)
}

func Test_CreateApiKey_WithoutName_ReturnsBadRequest(t *testing.T) {
	router := CreateApiKeyTestRouter()
	owner := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/api-keys",
		"Bearer "+owner.Token,
		CreateApiKeyRequestDTO{},
		http.StatusBadRequest,
	)
}

func Test_CreateApiKey_WithoutSession_ReturnsUnauthorized(t *testing.T) {
	router := CreateApiKeyTestRouter()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/api-keys",
		"",
		CreateApiKeyRequestDTO{Name: "Deploy key"},
		http.StatusUnauthorized,
	)
}

// GetApiKeys Tests

func Test_GetApiKeys_ListsOwnKeysWithoutSecrets(t *testing.T) {
	router := CreateApiKeyTestRouter()
	owner := users_testing.CreateTestUser()
	created := CreateTestApiKey("Laptop key", owner.Token, router)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/api-keys",
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	body := string(resp.Body)
	assert.Contains(t, body, "Laptop key")
	assert.Contains(t, body, created.KeyPrefix)
	assert.NotContains(t, body, created.Key, "listing must never include the plaintext key")
	assert.NotContains(t, body, "keyHash")
}

func Test_GetApiKeys_DoesNotIncludeOtherUsersKeys(t *testing.T) {
	router := CreateApiKeyTestRouter()
	owner := users_testing.CreateTestUser()
	other := users_testing.CreateTestUser()
	CreateTestApiKey("Owner key", owner.Token, router)

	var response GetApiKeysResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/api-keys",
		"Bearer "+other.Token,
		http.StatusOK,
		&response,
	)

	assert.Empty(t, response.ApiKeys)
}

// DeleteApiKey Tests

func Test_DeleteApiKey_ViaAPI_KeyDisappearsFromListing(t *testing.T) {
	router := CreateApiKeyTestRouter()
	owner := users_testing.CreateTestUser()
	created := CreateTestApiKey("Doomed key", owner.Token, router)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/api-keys/"+created.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	var response GetApiKeysResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/api-keys",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)
	assert.Empty(t, response.ApiKeys)
}

func Test_DeleteApiKey_WhenUnknown_ReturnsNotFound(t *testing.T) {
	router := CreateApiKeyTestRouter()
	owner := users_testing.CreateTestUser()

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/api-keys/"+uuid.New().String(),
		"Bearer "+owner.Token,
		http.StatusNotFound,
	)
}

func Test_DeleteApiKey_WithMalformedID_ReturnsBadRequest(t *testing.T) {
	router := CreateApiKeyTestRouter()
	owner := users_testing.CreateTestUser()

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/api-keys/not-a-uuid",
		"Bearer "+owner.Token,
		http.StatusBadRequest,
	)
}

func Test_DeleteApiKey_OwnedByAnotherUser_ReturnsNotFound(t *testing.T) {
	router := CreateApiKeyTestRouter()
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()
	created := CreateTestApiKey("Owner key", owner.Token, router)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/api-keys/"+created.ID.String(),
		"Bearer "+stranger.Token,
		http.StatusNotFound,
	)
}
