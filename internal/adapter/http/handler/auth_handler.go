package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	. "taskboard/internal/adapter/http/helper"
	. "taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/model/request"
	"taskboard/internal/core/model/response"
	"taskboard/internal/core/port"
)

// AuthHandler exposes the login stub. It is deliberately unauthenticated:
// the username is taken at face value and echoed back as a claim.
type AuthHandler struct {
	svc    port.IdentityService
	Logger *otelzap.Logger
}

func NewAuthHandler(svc port.IdentityService, logger *otelzap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, Logger: logger}
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.LoginRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "Username is required")
		return
	}

	if err := Validator.Struct(params); err != nil {
		h.Logger.Ctx(ctx).Debug("Login validation failed",
			zap.Any("details", FormatValidationErrors(err)))

		SendBadRequestError(c, "Username is required")
		return
	}

	claim, err := h.svc.Authenticate(ctx, params.Username)

	if err != nil {
		SendBadRequestError(c, "Username is required")
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    claim,
	})
}
