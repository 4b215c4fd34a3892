package shares

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ssqlone/ByteStash/internal/features/api_keys"
	"github.com/ssqlone/ByteStash/internal/features/snippets"
	snippets_testing "github.com/ssqlone/ByteStash/internal/features/snippets/testing"
	users_middleware "github.com/ssqlone/ByteStash/internal/features/users/middleware"
	users_services "github.com/ssqlone/ByteStash/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateShareTestRouter builds a router with both surfaces share tests need:
// the session-protected management routes and the public resolution routes
// behind optional auth, mirroring the production route layout.
func CreateShareTestRouter(publicControllers ...snippets_testing.PublicControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	userService := users_services.GetUserService()

	public := v1.Group("")
	public.Use(users_middleware.OptionalAuthMiddleware(userService))
	public.Use(api_keys.ApiKeyMiddleware(api_keys.GetApiKeyService(), userService))
	GetShareController().RegisterPublicRoutes(public)
	for _, controller := range publicControllers {
		controller.RegisterPublicRoutes(public)
	}

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(userService))
	if routerGroup, ok := protected.(*gin.RouterGroup); ok {
		snippets.GetSnippetController().RegisterRoutes(routerGroup)
		GetShareController().RegisterRoutes(routerGroup)
	}

	return router
}

func CreateTestShare(
	snippetID uuid.UUID,
	request *CreateShareRequestDTO,
	ownerToken string,
	router *gin.Engine,
) *Share {
	if request == nil {
		request = &CreateShareRequestDTO{}
	}

	w := snippets_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/snippets/"+snippetID.String()+"/shares",
		"Bearer "+ownerToken,
		request,
	)

	if w.Code != http.StatusCreated {
		fmt.Printf("Failed to create share link. Status: %d, Body: %s\n", w.Code, string(w.Body))
		panic("Failed to create share link via API")
	}

	var response Share
	if err := json.Unmarshal(w.Body, &response); err != nil {
		panic(err)
	}

	return &response
}
