package snippets_testing

import "github.com/gin-gonic/gin"

type ControllerInterface interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type PublicControllerInterface interface {
	RegisterPublicRoutes(router *gin.RouterGroup)
}
