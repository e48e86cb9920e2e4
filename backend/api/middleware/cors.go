package middleware

import (
	"time"

	"trifile/backend/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin policy from CORS_ALLOW_ORIGINS. The upload
// widget is typically embedded on a different origin than the API.
func CORS() gin.HandlerFunc {
	config := cors.DefaultConfig()
	if len(common.CORSAllowOrigins) == 1 && common.CORSAllowOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = common.CORSAllowOrigins
		config.AllowCredentials = true
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Content-Type", "Authorization"}
	config.MaxAge = 12 * time.Hour
	return cors.New(config)
}
