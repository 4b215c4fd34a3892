package users_controllers

import (
	"fmt"
	"net/http"
	"testing"

	users_dto "github.com/ssqlone/ByteStash/internal/features/users/dto"
	users_middleware "github.com/ssqlone/ByteStash/internal/features/users/middleware"
	users_models "github.com/ssqlone/ByteStash/internal/features/users/models"
	users_services "github.com/ssqlone/ByteStash/internal/features/users/services"
	users_testing "github.com/ssqlone/ByteStash/internal/features/users/testing"
	test_utils "github.com/ssqlone/ByteStash/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	GetUserController().RegisterRoutes(v1)

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	if routerGroup, ok := protected.(*gin.RouterGroup); ok {
		GetUserController().RegisterProtectedRoutes(routerGroup)
	}

	return router
}

func uniqueUsername() string {
	return fmt.Sprintf("user-%s", uuid.New().String()[:8])
}

// Register Tests

func Test_Register_WithValidCredentials_UserCreated(t *testing.T) {
	router := createUserTestRouter()
	username := uniqueUsername()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/register",
		"",
		users_dto.RegisterRequestDTO{Username: username, Password: "correct-horse"},
		http.StatusOK,
	)

	var response users_dto.LoginResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/login",
		"",
		users_dto.LoginRequestDTO{Username: username, Password: "correct-horse"},
		http.StatusOK,
		&response,
	)

	assert.Equal(t, username, response.Username)
	assert.NotEmpty(t, response.Token)
}

func Test_Register_WithTakenUsername_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	username := uniqueUsername()

	request := users_dto.RegisterRequestDTO{Username: username, Password: "correct-horse"}

	test_utils.MakePostRequest(t, router, "/api/v1/users/register", "", request, http.StatusOK)
	test_utils.MakePostRequest(t, router, "/api/v1/users/register", "", request, http.StatusBadRequest)
}

func Test_Register_WithShortPassword_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/register",
		"",
		users_dto.RegisterRequestDTO{Username: uniqueUsername(), Password: "short"},
		http.StatusBadRequest,
	)
}

// Login Tests

func Test_Login_WithWrongPassword_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	username := uniqueUsername()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/register",
		"",
		users_dto.RegisterRequestDTO{Username: username, Password: "correct-horse"},
		http.StatusOK,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/login",
		"",
		users_dto.LoginRequestDTO{Username: username, Password: "wrong-horse"},
		http.StatusBadRequest,
	)
}

func Test_Login_WithUnknownUsername_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/login",
		"",
		users_dto.LoginRequestDTO{Username: uniqueUsername(), Password: "whatever1"},
		http.StatusBadRequest,
	)
}

// GetCurrentUser Tests

func Test_GetCurrentUser_WithValidToken_ReturnsUserWithoutPasswordFields(t *testing.T) {
	router := createUserTestRouter()
	login := users_testing.CreateTestUser()

	var user users_models.User
	resp := test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+login.Token,
		http.StatusOK,
		&user,
	)

	assert.Equal(t, login.UserID, user.ID)
	assert.Equal(t, login.Username, user.Username)
	require.NotContains(t, string(resp.Body), "hashedPassword")
	require.NotContains(t, string(resp.Body), "$2a$")
}

func Test_GetCurrentUser_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "", http.StatusUnauthorized)
}

func Test_GetCurrentUser_WithGarbageToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer not.a.jwt", http.StatusUnauthorized)
}
