package shares

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ssqlone/ByteStash/internal/features/snippets"
	users_middleware "github.com/ssqlone/ByteStash/internal/features/users/middleware"
	duration_utils "github.com/ssqlone/ByteStash/internal/util/duration"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShareController struct {
	shareService *ShareService
}

func (c *ShareController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/snippets/:snippetId/shares", c.CreateShare)
	router.GET("/snippets/:snippetId/shares", c.GetSnippetShares)
	router.DELETE("/shares/:shareId", c.DeleteShare)
}

// RegisterPublicRoutes mounts the capability resolution endpoint. The
// group is expected to carry optional-auth middleware so requires-auth
// links can recognize logged-in callers without rejecting anonymous ones.
func (c *ShareController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/public/shares/:shareId", c.ResolveShare)
}

// CreateShare
// @Summary Create a share link for a snippet
// @Tags shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param snippetId path string true "Snippet ID"
// @Param request body CreateShareRequestDTO true "Share settings"
// @Success 201 {object} Share
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /snippets/{snippetId}/shares [post]
func (c *ShareController) CreateShare(ctx *gin.Context) {
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

	var request CreateShareRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	share, err := c.shareService.CreateShare(snippetID, &request, user)
	if err != nil {
		if errors.Is(err, snippets.ErrSnippetNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Snippet not found"})
			return
		}
		if errors.Is(err, duration_utils.ErrInvalidDuration) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create share link"})
		return
	}

	ctx.JSON(http.StatusCreated, share)
}

// GetSnippetShares
// @Summary List share links for a snippet
// @Tags shares
// @Produce json
// @Security BearerAuth
// @Param snippetId path string true "Snippet ID"
// @Success 200 {object} GetSharesResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /snippets/{snippetId}/shares [get]
func (c *ShareController) GetSnippetShares(ctx *gin.Context) {
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

	response, err := c.shareService.GetSnippetShares(snippetID, user)
	if err != nil {
		if errors.Is(err, snippets.ErrSnippetNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Snippet not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shares"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteShare
// @Summary Delete a share link
// @Tags shares
// @Security BearerAuth
// @Param shareId path string true "Share ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shares/{shareId} [delete]
func (c *ShareController) DeleteShare(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := c.shareService.DeleteShare(ctx.Param("shareId"), user); err != nil {
		if errors.Is(err, ErrShareNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Share link not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete share link"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Share link deleted successfully"})
}

// ResolveShare
// @Summary Resolve a share link to its snippet
// @Description Public endpoint; expired links are indistinguishable from unknown ones
// @Tags shares
// @Produce json
// @Param shareId path string true "Share ID"
// @Param showTitle query bool false "Include the snippet title" default(false)
// @Param showDescription query bool false "Include the snippet description" default(false)
// @Param fragmentIndex query int false "Select a single fragment instead of all"
// @Success 200 {object} snippets.SnippetProjection
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /public/shares/{shareId} [get]
func (c *ShareController) ResolveShare(ctx *gin.Context) {
	_, callerIsAuthenticated := users_middleware.GetUserFromContext(ctx)

	options, err := projectionOptionsFromQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fragment index"})
		return
	}

	projection, err := c.shareService.ResolveShareAccess(
		ctx.Param("shareId"),
		callerIsAuthenticated,
		options,
	)
	if err != nil {
		respondResolveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projection)
}

func projectionOptionsFromQuery(ctx *gin.Context) (snippets.ProjectionOptions, error) {
	options := snippets.ProjectionOptions{
		ShowTitle:       ctx.Query("showTitle") == "true",
		ShowDescription: ctx.Query("showDescription") == "true",
	}

	if raw := ctx.Query("fragmentIndex"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			return options, err
		}
		options.FragmentIndex = &index
	}

	return options, nil
}

func respondResolveError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrShareNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Share link not found"})
	case errors.Is(err, ErrShareAuthRequired):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, snippets.ErrFragmentIndexOutOfRange):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Fragment index is out of range"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
