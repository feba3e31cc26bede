package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/core/model/response"
)

// All non-listing responses share one shape: {"message": "..."}. Errors use
// it too; storage failures never leak their cause to the caller.

func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, response.MessageResponse{Message: message})
}

func SendBadRequestError(c *gin.Context, message string) {
	SendMessage(c, http.StatusBadRequest, message)
}

func SendInternalError(c *gin.Context, message string) {
	SendMessage(c, http.StatusInternalServerError, message)
}
