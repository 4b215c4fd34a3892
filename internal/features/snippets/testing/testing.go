package snippets_testing

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ssqlone/ByteStash/internal/features/snippets"
	users_middleware "github.com/ssqlone/ByteStash/internal/features/users/middleware"
	users_services "github.com/ssqlone/ByteStash/internal/features/users/services"
	test_utils "github.com/ssqlone/ByteStash/internal/util/testing"

	"github.com/gin-gonic/gin"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	return router
}

func CreateSnippetTestRouter(additionalControllers ...ControllerInterface) *gin.Engine {
	controllers := []ControllerInterface{snippets.GetSnippetController()}
	controllers = append(controllers, additionalControllers...)
	return CreateTestRouter(controllers...)
}

func CreateTestSnippet(title string, ownerToken string, router *gin.Engine) *snippets.Snippet {
	request := snippets.CreateSnippetRequestDTO{
		Title: title,
		Fragments: []snippets.FragmentDTO{
			{FileName: "main.go", Code: "package main", Language: "go"},
			{FileName: "util.go", Code: "package main\n\nfunc helper() {}", Language: "go"},
		},
	}

	w := MakeAPIRequest(router, "POST", "/api/v1/snippets", "Bearer "+ownerToken, request)

	if w.Code != http.StatusCreated {
		fmt.Printf("Failed to create snippet. Status: %d, Body: %s\n", w.Code, string(w.Body))
		panic("Failed to create snippet via API")
	}

	var response snippets.Snippet
	if err := json.Unmarshal(w.Body, &response); err != nil {
		panic(err)
	}

	return &response
}

func MakeAPIRequest(router *gin.Engine, method, url, authToken string, body any) test_utils.TestResponse {
	return test_utils.MakeRawRequest(router, test_utils.RequestOptions{
		Method:    method,
		URL:       url,
		Body:      body,
		AuthToken: authToken,
	})
}
