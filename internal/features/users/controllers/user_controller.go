package users_controllers

import (
	"net/http"

	users_dto "github.com/ssqlone/ByteStash/internal/features/users/dto"
	users_middleware "github.com/ssqlone/ByteStash/internal/features/users/middleware"
	users_services "github.com/ssqlone/ByteStash/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *users_services.UserService
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users/register", c.Register)
	router.POST("/users/login", c.Login)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", c.GetCurrentUser)
}

// Register
// @Summary Register a new user
// @Description Register a new user with username and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.RegisterRequestDTO true "User registration data"
// @Success 200
// @Failure 400
// @Router /users/register [post]
func (c *UserController) Register(ctx *gin.Context) {
	var request users_dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.userService.Register(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User created successfully"})
}

// Login
// @Summary Authenticate a user
// @Description Authenticate a user with username and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body users_dto.LoginRequestDTO true "User login data"
// @Success 200 {object} users_dto.LoginResponseDTO
// @Failure 400
// @Router /users/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	var request users_dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.userService.Login(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCurrentUser
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_models.User
// @Failure 401
// @Router /users/me [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
