package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	t.Run("generates new request ID when not provided", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(requestIDKey))
		})

		w := doGet(router, "/test")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(requestIDHeader))
	})

	t.Run("uses provided request ID", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(requestIDKey))
		})

		req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.Header.Set(requestIDHeader, "custom-request-id-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "custom-request-id-123", w.Body.String())
		assert.Equal(t, "custom-request-id-123", w.Header().Get(requestIDHeader))
	})
}

func TestLogger(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusInternalServerError} {
		router := gin.New()
		router.Use(RequestID())
		router.Use(Logger())
		router.GET("/test", func(c *gin.Context) {
			c.Status(status)
		})

		w := doGet(router, "/test")

		assert.Equal(t, status, w.Code)
	}
}

func TestRecovery(t *testing.T) {
	t.Run("recovers from panic without leaking details", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.Use(Recovery())
		router.GET("/test", func(c *gin.Context) {
			panic("secret internal state")
		})

		w := doGet(router, "/test")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "secret")
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		w := doGet(router, "/test")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
