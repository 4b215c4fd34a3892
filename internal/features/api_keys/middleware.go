package api_keys

import (
	"net/http"

	users_services "github.com/ssqlone/ByteStash/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

// ApiKeyHeader carries the plaintext key on machine requests. A missing
// header means the request is not attempting key auth and passes through to
// whatever other auth the route applies; only a present-but-invalid key is
// rejected.
const ApiKeyHeader = "x-api-key"

func ApiKeyMiddleware(
	apiKeyService *ApiKeyService,
	userService *users_services.UserService,
) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.GetHeader(ApiKeyHeader)
		if key == "" {
			ctx.Next()
			return
		}

		principal, err := apiKeyService.ValidateApiKey(key)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			ctx.Abort()
			return
		}

		if principal == nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			ctx.Abort()
			return
		}

		user, err := userService.GetUserByID(principal.UserID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			ctx.Abort()
			return
		}

		// A key whose owner row is gone is as unauthorized as a bad key.
		if user == nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Set("apiKeyId", principal.KeyID)
		ctx.Next()
	}
}
