package embed

import (
	"errors"
	"net/http"

	"github.com/ssqlone/ByteStash/internal/features/shares"
	"github.com/ssqlone/ByteStash/internal/features/snippets"
	users_middleware "github.com/ssqlone/ByteStash/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type EmbedController struct {
	shareService *shares.ShareService
}

// RegisterPublicRoutes mounts the embed payload endpoint; the group is
// expected to carry optional-auth middleware.
func (c *EmbedController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/embed/:shareId", c.GetEmbedData)
}

// GetEmbedData
// @Summary Resolve a share link into an embeddable snippet payload
// @Description Public endpoint used by embedded frames; honors the embed display flags
// @Tags embed
// @Produce json
// @Param shareId path string true "Share ID"
// @Param showTitle query bool false "Include the snippet title" default(false)
// @Param showDescription query bool false "Include the snippet description" default(false)
// @Param showFileHeaders query bool false "Show per-fragment file headers" default(true)
// @Param showPoweredBy query bool false "Show the powered-by footer" default(true)
// @Param theme query string false "Theme" Enums(light, dark, system)
// @Param fragmentIndex query int false "Select a single fragment instead of all"
// @Success 200 {object} snippets.SnippetProjection
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /embed/{shareId} [get]
func (c *EmbedController) GetEmbedData(ctx *gin.Context) {
	_, callerIsAuthenticated := users_middleware.GetUserFromContext(ctx)

	params, err := ParamsFromQuery(ctx.Param("shareId"), ctx.Request.URL.Query())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fragment index"})
		return
	}

	projection, err := c.shareService.ResolveShareAccess(
		params.ShareID,
		callerIsAuthenticated,
		snippets.ProjectionOptions{
			ShowTitle:       params.ShowTitle,
			ShowDescription: params.ShowDescription,
			FragmentIndex:   params.FragmentIndex,
		},
	)
	if err != nil {
		respondEmbedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projection)
}

func respondEmbedError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, shares.ErrShareNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Share link not found"})
	case errors.Is(err, shares.ErrShareAuthRequired):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, snippets.ErrFragmentIndexOutOfRange):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Fragment index is out of range"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
