package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/middleware"
)

func newLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	limiter := middleware.NewRateLimiter(otelzap.New(zap.NewNop()), nil)

	router := gin.New()
	router.Use(limiter.Middleware())
	router.POST("/api/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router.GET("/api/todos", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})

	return router
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:52000"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestRateLimiter_AllowsWithinBudget(t *testing.T) {
	RegisterTestingT(t)

	router := newLimitedRouter()

	for i := 0; i < 10; i++ {
		w := doRequest(router, http.MethodPost, "/api/login")
		Expect(w.Code).To(Equal(http.StatusOK))
	}
}

func TestRateLimiter_BlocksOverBudget(t *testing.T) {
	RegisterTestingT(t)

	router := newLimitedRouter()

	for i := 0; i < 10; i++ {
		doRequest(router, http.MethodPost, "/api/login")
	}

	w := doRequest(router, http.MethodPost, "/api/login")

	Expect(w.Code).To(Equal(http.StatusTooManyRequests))
	Expect(w.Body.String()).To(ContainSubstring("Too many requests"))
	Expect(w.Header().Get("X-RateLimit-Remaining")).To(Equal("0"))
}

func TestRateLimiter_SetsHeaders(t *testing.T) {
	RegisterTestingT(t)

	router := newLimitedRouter()

	w := doRequest(router, http.MethodPost, "/api/login")

	Expect(w.Header().Get("X-RateLimit-Limit")).To(Equal("10"))
	Expect(w.Header().Get("X-RateLimit-Remaining")).To(Equal("9"))
	Expect(w.Header().Get("X-RateLimit-Reset")).ToNot(BeEmpty())
}

func TestRateLimiter_BudgetsArePerEndpoint(t *testing.T) {
	RegisterTestingT(t)

	router := newLimitedRouter()

	for i := 0; i < 10; i++ {
		doRequest(router, http.MethodPost, "/api/login")
	}

	// Login is exhausted but the default budget still has room.
	w := doRequest(router, http.MethodGet, "/api/todos")

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Header().Get("X-RateLimit-Limit")).To(Equal("120"))
}
