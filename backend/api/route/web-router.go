package route

import (
	"embed"

	"trifile/backend/common"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// setWebRouter serves the embedded upload widget and, under the disk backend,
// the stored files themselves as static content.
func setWebRouter(route *gin.Engine, widgetFS embed.FS) {
	route.Use(static.Serve("/widget", common.EmbedFolder(widgetFS, "public")))

	if common.StorageBackend == common.StorageBackendDisk {
		route.Static("/uploads", common.UploadPath)
	}
}
