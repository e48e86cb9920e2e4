package route

import (
	"embed"

	"trifile/backend/api/handler"

	"github.com/gin-gonic/gin"
)

func SetRouter(route *gin.Engine, files *handler.FileHandler, widgetFS embed.FS) {
	SetApiRouter(route, files)
	setWebRouter(route, widgetFS)
}
