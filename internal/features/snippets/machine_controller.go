package snippets

import (
	"encoding/json"
	"net/http"

	users_middleware "github.com/ssqlone/ByteStash/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

// MachineController serves the API-key-authenticated machine surface. The
// key middleware is applied by the route group it is registered on.
type MachineController struct {
	snippetService *SnippetService
}

func (c *MachineController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/snippets/push", c.PushSnippet)
}

type pushSnippetRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Fragments   json.RawMessage `json:"fragments"`
}

// PushSnippet
// @Summary Push a snippet from a machine client
// @Description Create a snippet attributed to the user owning the presented API key
// @Tags machine
// @Accept json
// @Produce json
// @Param x-api-key header string true "API key"
// @Param request body CreateSnippetRequestDTO true "Snippet data"
// @Success 201 {object} Snippet
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /machine/snippets/push [post]
func (c *MachineController) PushSnippet(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
		return
	}

	var request pushSnippetRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Fragments are decoded separately so a non-array payload is reported
	// as such instead of a generic binding failure.
	var fragments []FragmentDTO
	if len(request.Fragments) > 0 {
		if err := json.Unmarshal(request.Fragments, &fragments); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Fragments must be an array"})
			return
		}
	}

	if len(fragments) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "At least one fragment is required"})
		return
	}

	snippet, err := c.snippetService.CreateSnippet(&CreateSnippetRequestDTO{
		Title:       request.Title,
		Description: request.Description,
		Fragments:   fragments,
	}, user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, snippet)
}
