package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwork/dashboard/internal/config"
	"github.com/smartwork/dashboard/internal/demo"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(m *Manager, r *Registry) *gin.Engine {
	router := gin.New()
	router.Use(m.LoadSave(), Workspace(m, r))
	router.GET("/ws", func(c *gin.Context) {
		ws, ok := FromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, ws.ID)
	})
	router.POST("/reset", func(c *gin.Context) {
		_ = m.Reset(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestWorkspaceMiddleware(t *testing.T) {
	m := NewManager(config.Sessions{Lifetime: time.Hour})
	r := NewRegistry(demo.Dataset)
	router := newTestRouter(m, r)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ws", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	first := rr.Body.String()
	require.NotEmpty(t, first)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "smartwork_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	t.Run("same cookie, same workspace", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		req.AddCookie(cookies[0])
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, first, rr.Body.String())
		assert.Equal(t, 1, r.Len())
	})

	t.Run("no cookie, new workspace", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ws", nil))
		assert.NotEqual(t, first, rr.Body.String())
		assert.Equal(t, 2, r.Len())
	})

	t.Run("reset clears the cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/reset", nil)
		req.AddCookie(cookies[0])
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNoContent, rr.Code)
		reset := rr.Result().Cookies()
		require.Len(t, reset, 1)
		assert.Empty(t, reset[0].Value)
	})
}

func TestFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := FromContext(c)
	assert.False(t, ok)
}

func TestCSRF(t *testing.T) {
	newRouter := func(secret string) *gin.Engine {
		router := gin.New()
		router.Use(CSRF(secret, false))
		router.GET("/api/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		router.POST("/api/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("disabled without a secret", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newRouter("").ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/ping", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get(CSRFTokenHeader))
	})

	t.Run("safe methods pass and receive a token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newRouter("test-secret-key-32-bytes-long!!!").ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(CSRFTokenHeader))
	})

	t.Run("post without token is rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newRouter("test-secret-key-32-bytes-long!!!").ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/ping", nil))
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "csrf_failed")
	})
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, rr.Header().Get("Strict-Transport-Security"))
}
