package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskboard/internal/adapter/http/handler"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/telemetry"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler
}

type RouterOptions struct {
	RateLimitEnabled bool
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *otelzap.Logger, opts RouterOptions) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(otelgin.Middleware("taskboard"))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(logger))

	if metrics != nil {
		router.Use(middleware.Metrics(metrics))
	}

	if opts.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(logger, metrics)
		router.Use(limiter.Middleware())
	}

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerAPIRoutes(router, handlers)

	return router
}

// SetupRouterForTests wires the same routes without telemetry or rate
// limiting so handler tests see plain request/response behavior.
func SetupRouterForTests(handlers HandlersConfig, logger *otelzap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(logger))
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	registerAPIRoutes(router, handlers)

	return router
}

func registerAPIRoutes(router *gin.Engine, handlers HandlersConfig) {
	api := router.Group("/api")
	{
		if handlers.AuthHandler != nil {
			api.POST("/login", handlers.AuthHandler.Login)
		}

		if handlers.TodoHandler != nil {
			api.GET("/todos", handlers.TodoHandler.ListAll)
			api.GET("/todos/:username", handlers.TodoHandler.ListByUsername)
			api.POST("/todos", handlers.TodoHandler.Create)
			api.PUT("/todos/:id", handlers.TodoHandler.SetStatus)
			api.DELETE("/todos/:id", handlers.TodoHandler.Delete)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
