package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Liveness reports that the API is up.
func Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "trifile API is running",
	})
}
