package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody là JSON shape cho mọi failure response
type ErrorBody struct {
	Detail string `json:"detail"`
}

// MessageBody là JSON shape cho confirmation responses
type MessageBody struct {
	Message string `json:"message"`
}

// Error responses
func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorBody{Detail: detail})
}

func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// Message trả về confirmation message (vd: sau khi delete)
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}
