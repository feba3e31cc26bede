package http

import (
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"taskboard/internal/adapter/http/handler"
	"taskboard/internal/core/port"
	"taskboard/internal/core/service"
	"taskboard/internal/core/telemetry"
)

type Container struct {
	TodoRepo port.TodoRepository

	TodoService     port.TodoService
	IdentityService port.IdentityService

	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler
}

// NewContainer wires repositories into services into handlers. The repository
// is injected so the caller decides which store backend it is bound to.
func NewContainer(todoRepo port.TodoRepository, probe port.Telemetry, logger *otelzap.Logger, metrics *telemetry.AppMetrics) *Container {
	todoSvc := service.NewTodoService(todoRepo, probe)
	identitySvc := service.NewIdentityService()

	return &Container{
		TodoRepo: todoRepo,

		TodoService:     todoSvc,
		IdentityService: identitySvc,

		AuthHandler: handler.NewAuthHandler(identitySvc, logger),
		TodoHandler: handler.NewTodoHandler(todoSvc, logger, metrics),
	}
}
