package route

import (
	"trifile/backend/api/handler"

	"github.com/gin-gonic/gin"
)

// SetApiRouter registers the file API at the root and mirrors it under /api,
// so both the bare deployment shape and the prefixed one keep working.
func SetApiRouter(route *gin.Engine, files *handler.FileHandler) {
	route.GET("/", handler.Liveness)

	registerFileRoutes(&route.RouterGroup, files)
	registerFileRoutes(route.Group("/api"), files)
}

func registerFileRoutes(g *gin.RouterGroup, files *handler.FileHandler) {
	g.POST("/upload", files.Upload)
	g.GET("/files", files.List)
	g.GET("/files/:uuid", files.Get)
}
