package snippets

import (
	"errors"
	"net/http"

	users_middleware "github.com/ssqlone/ByteStash/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SnippetController struct {
	snippetService *SnippetService
}

func (c *SnippetController) RegisterRoutes(router *gin.RouterGroup) {
	snippetRoutes := router.Group("/snippets")

	snippetRoutes.POST("", c.CreateSnippet)
	snippetRoutes.GET("", c.GetSnippets)
	snippetRoutes.GET("/:snippetId", c.GetSnippet)
	snippetRoutes.DELETE("/:snippetId", c.DeleteSnippet)
}

// CreateSnippet
// @Summary Create a new snippet
// @Tags snippets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSnippetRequestDTO true "Snippet data"
// @Success 201 {object} Snippet
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /snippets [post]
func (c *SnippetController) CreateSnippet(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request CreateSnippetRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	snippet, err := c.snippetService.CreateSnippet(&request, user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, snippet)
}

// GetSnippets
// @Summary List snippets owned by the authenticated user
// @Tags snippets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} GetSnippetsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /snippets [get]
func (c *SnippetController) GetSnippets(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.snippetService.GetUserSnippets(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve snippets"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetSnippet
// @Summary Get a snippet by id
// @Tags snippets
// @Produce json
// @Security BearerAuth
// @Param snippetId path string true "Snippet ID"
// @Success 200 {object} Snippet
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /snippets/{snippetId} [get]
func (c *SnippetController) GetSnippet(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	snippetID, err := uuid.Parse(ctx.Param("snippetId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid snippet ID"})
		return
	}

	snippet, err := c.snippetService.GetSnippet(snippetID, user)
	if err != nil {
		if errors.Is(err, ErrSnippetNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Snippet not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve snippet"})
		return
	}

	ctx.JSON(http.StatusOK, snippet)
}

// DeleteSnippet
// @Summary Delete a snippet
// @Description Delete a snippet together with its fragments and share links
// @Tags snippets
// @Security BearerAuth
// @Param snippetId path string true "Snippet ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /snippets/{snippetId} [delete]
func (c *SnippetController) DeleteSnippet(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	snippetID, err := uuid.Parse(ctx.Param("snippetId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid snippet ID"})
		return
	}

	if err := c.snippetService.DeleteSnippet(snippetID, user); err != nil {
		if errors.Is(err, ErrSnippetNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Snippet not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete snippet"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Snippet deleted successfully"})
}
