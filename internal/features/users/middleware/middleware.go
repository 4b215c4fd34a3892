package users_middleware

import (
	"net/http"
	"strings"

	users_models "github.com/ssqlone/ByteStash/internal/features/users/models"
	users_services "github.com/ssqlone/ByteStash/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session JWT and adds the user to the context.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			ctx.Abort()
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid session token is
// presented but lets anonymous requests pass through untouched. Public share
// and embed endpoints use it so requires-auth links can recognize callers.
func OptionalAuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			ctx.Next()
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err == nil {
			ctx.Set("user", user)
		}

		ctx.Next()
	}
}

// GetUserFromContext helper function to extract user from gin context
func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}

func bearerToken(ctx *gin.Context) string {
	token := ctx.GetHeader("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")

	return token
}
