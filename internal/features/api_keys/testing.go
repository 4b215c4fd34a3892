package api_keys

import (
	"encoding/json"
	"fmt"
	"net/http"

	snippets_testing "github.com/ssqlone/ByteStash/internal/features/snippets/testing"

	"github.com/gin-gonic/gin"
)

func CreateApiKeyTestRouter(additionalControllers ...snippets_testing.ControllerInterface) *gin.Engine {
	controllers := []snippets_testing.ControllerInterface{GetApiKeyController()}
	controllers = append(controllers, additionalControllers...)
	return snippets_testing.CreateTestRouter(controllers...)
}

// CreateTestApiKey issues a key through the API. The returned ApiKey carries
// the plaintext secret in Key, which only exists in this one response.
func CreateTestApiKey(name string, ownerToken string, router *gin.Engine) *ApiKey {
	request := CreateApiKeyRequestDTO{
		Name: name,
	}

	w := snippets_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/api-keys",
		"Bearer "+ownerToken,
		request,
	)

	if w.Code != http.StatusCreated {
		fmt.Printf("Failed to create API key. Status: %d, Body: %s\n", w.Code, string(w.Body))
		panic("Failed to create API key via API")
	}

	var response ApiKey
	if err := json.Unmarshal(w.Body, &response); err != nil {
		panic(err)
	}

	return &response
}
