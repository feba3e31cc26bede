package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	. "taskboard/internal/adapter/http/helper"
	. "taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/model/request"
	"taskboard/internal/core/model/response"
	"taskboard/internal/core/port"
	"taskboard/internal/core/telemetry"
)

type TodoHandler struct {
	svc     port.TodoService
	Logger  *otelzap.Logger
	Metrics *telemetry.AppMetrics
}

func NewTodoHandler(svc port.TodoService, logger *otelzap.Logger, metrics *telemetry.AppMetrics) *TodoHandler {
	return &TodoHandler{
		svc:     svc,
		Logger:  logger,
		Metrics: metrics,
	}
}

func (h *TodoHandler) ListAll(c *gin.Context) {
	ctx := c.Request.Context()

	todos, err := h.svc.ListAll(ctx)

	if err != nil {
		h.Logger.Ctx(ctx).Error("Failed to list todos", zap.Error(err))
		SendInternalError(c, "Database error")
		return
	}

	h.recordOperation(c, "list")

	c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) ListByUsername(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")

	todos, err := h.svc.ListByUsername(ctx, username)

	if err != nil {
		h.Logger.Ctx(ctx).Error("Failed to list todos by username",
			zap.Error(err),
			zap.String("username", username))
		SendInternalError(c, "Database error")
		return
	}

	h.recordOperation(c, "list_by_username")

	c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CreateTodoRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "Missing fields")
		return
	}

	if err := Validator.Struct(params); err != nil {
		h.Logger.Ctx(ctx).Debug("Create validation failed",
			zap.Any("details", FormatValidationErrors(err)))

		SendBadRequestError(c, "Missing fields")
		return
	}

	id, err := h.svc.Create(ctx, params.Username, params.Title, params.TargetDatetime)

	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			SendBadRequestError(c, "Missing fields")
			return
		}

		h.Logger.Ctx(ctx).Error("Failed to create todo",
			zap.Error(err),
			zap.String("username", params.Username))
		SendInternalError(c, "Insert failed")
		return
	}

	h.recordOperation(c, "create")

	c.JSON(http.StatusOK, response.CreateTodoResponse{
		Message: "Todo created",
		ID:      id,
	})
}

func (h *TodoHandler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		SendBadRequestError(c, "Invalid id")
		return
	}

	var params request.SetStatusRequest

	// A missing or malformed body leaves the status empty, which fails the
	// allowed-set check below like any other bad value.
	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "Invalid status")
		return
	}

	if err := h.svc.SetStatus(ctx, id, params.Status); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			SendBadRequestError(c, "Invalid status")
			return
		}

		h.Logger.Ctx(ctx).Error("Failed to update todo status",
			zap.Error(err),
			zap.Int64("id", id))
		SendInternalError(c, "Update failed")
		return
	}

	h.recordOperation(c, "set_status")

	SendMessage(c, http.StatusOK, "Status updated")
}

func (h *TodoHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		SendBadRequestError(c, "Invalid id")
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		h.Logger.Ctx(ctx).Error("Failed to delete todo",
			zap.Error(err),
			zap.Int64("id", id))
		SendInternalError(c, "Delete failed")
		return
	}

	h.recordOperation(c, "delete")

	SendMessage(c, http.StatusOK, "Todo deleted")
}

func (h *TodoHandler) recordOperation(c *gin.Context, operation string) {
	if h.Metrics != nil {
		h.Metrics.RecordTodoOperation(c.Request.Context(), operation)
	}
}
