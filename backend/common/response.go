package common

import (
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the standard envelope for message-style responses.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const RFC3339MilliZ = "2006-01-02T15:04:05.000Z07:00"

// RespError responds with an error message and the wrapped error detail.
func RespError(c *gin.Context, statusCode int, msg string, err error) {
	errMsg := msg
	if err != nil {
		errMsg = msg + ": " + err.Error()
	}
	c.JSON(statusCode, APIResponse{
		Success: false,
		Message: errMsg,
	})
}

// RespErrorStr responds with an error message only.
func RespErrorStr(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Message: msg,
	})
}

// FormatTime renders a timestamp the way the API exposes it.
func FormatTime(t time.Time) string {
	return t.UTC().Format(RFC3339MilliZ)
}
