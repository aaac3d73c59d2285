package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"travel-gateway/cache"
	"travel-gateway/config"
	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testTokens() services.TokenService {
	return services.NewTokenService(config.JWTConfig{
		Secret:     []byte("middleware-secret"),
		AccessTTL:  time.Hour,
		RefreshTTL: time.Hour,
		ResetTTL:   time.Hour,
	})
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func TestRequireAuth(t *testing.T) {
	tokens := testTokens()
	user := &models.User{Base: models.Base{ID: "user-1"}, Email: "ops@example.com"}
	access, err := tokens.IssueAccess(user)
	require.NoError(t, err)
	refresh, err := tokens.IssueRefresh(user)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", RequireAuth(tokens, helper.NewHTTPHelper()), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UserIDKey)+"|"+c.GetString(UserEmailKey))
	})

	w := serve(r, http.MethodGet, "/me", bearer(access))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1|ops@example.com", w.Body.String())

	// query tokens are only honoured on streams
	w = serve(r, http.MethodGet, "/me?token="+access, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")

	w = serve(r, http.MethodGet, "/me", http.Header{"Authorization": []string{"Token " + access}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.MethodGet, "/me", bearer(refresh))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestRequireStreamAuth(t *testing.T) {
	tokens := testTokens()
	access, err := tokens.IssueAccess(&models.User{Base: models.Base{ID: "user-3"}})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/stream", RequireStreamAuth(tokens, helper.NewHTTPHelper()), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UserIDKey))
	})

	w := serve(r, http.MethodGet, "/stream?token="+access, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-3", w.Body.String())

	w = serve(r, http.MethodGet, "/stream", bearer(access))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/stream?token=garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")

	w = serve(r, http.MethodGet, "/stream", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	tokens := testTokens()
	access, err := tokens.IssueAccess(&models.User{Base: models.Base{ID: "user-2"}})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/feed", OptionalAuth(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UserIDKey))
	})

	assert.Equal(t, "user-2", serve(r, http.MethodGet, "/feed", bearer(access)).Body.String())
	assert.Equal(t, "", serve(r, http.MethodGet, "/feed", nil).Body.String())
	assert.Equal(t, "", serve(r, http.MethodGet, "/feed?token="+access, nil).Body.String())

	w := serve(r, http.MethodGet, "/feed", bearer("garbage"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.5, 2, helper.NewHTTPHelper())
	defer rl.Stop()

	r := gin.New()
	r.POST("/requests", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/requests", nil).Code)
	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/requests", nil).Code)

	w := serve(r, http.MethodPost, "/requests", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), helper.CodeTooManyRequests)

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodPost, "/requests", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	other := httptest.NewRecorder()
	r.ServeHTTP(other, req)
	assert.Equal(t, http.StatusCreated, other.Code)
	assert.Equal(t, 2, rl.Len())
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1, helper.NewHTTPHelper())
	defer rl.Stop()

	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.limiterFor("192.0.2.1")
	rl.limiterFor("192.0.2.2")

	now = now.Add(3 * defaultCleanupInterval)
	rl.limiterFor("192.0.2.2")
	rl.cleanup()

	assert.Equal(t, 1, rl.Len())
	rl.Stop()
	rl.Stop()
}

type countingCollector struct {
	mu       sync.Mutex
	hits     int
	misses   int
	routes   []string
	statuses []int
}

func (c *countingCollector) RecordRequest(_, route string, status int, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes = append(c.routes, route)
	c.statuses = append(c.statuses, status)
}
func (c *countingCollector) RecordTransition(string, string) {}
func (c *countingCollector) RecordDecompressFallback()       {}
func (c *countingCollector) RecordNotification(string)       {}
func (c *countingCollector) RecordCacheLookup(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

func TestResponseCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	collector := &countingCollector{}
	rc := NewResponseCache(cache.NewRedisCache(client, time.Minute), collector)
	tokens := testTokens()
	access, err := tokens.IssueAccess(&models.User{Base: models.Base{ID: "editor"}})
	require.NoError(t, err)

	calls := 0
	r := gin.New()
	r.GET("/blogs/published", OptionalAuth(tokens), rc.Cache("blogs"), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, []string{"zanzibar"})
	})
	r.GET("/blogs/missing", rc.Cache("blogs"), func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
	})
	r.DELETE("/blogs/:id", rc.Invalidate("blogs"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.DELETE("/broken/:id", rc.Invalidate("blogs"), func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
	})

	w := serve(r, http.MethodGet, "/blogs/published", nil)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	w = serve(r, http.MethodGet, "/blogs/published", nil)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.JSONEq(t, `["zanzibar"]`, w.Body.String())
	assert.Equal(t, 1, calls)
	assert.True(t, mr.Exists("response:blogs:/blogs/published"))

	// authenticated callers read through
	serve(r, http.MethodGet, "/blogs/published", bearer(access))
	assert.Equal(t, 2, calls)

	// failed mutations keep the cache
	serve(r, http.MethodDelete, "/broken/1", nil)
	assert.Equal(t, "HIT", serve(r, http.MethodGet, "/blogs/published", nil).Header().Get("X-Cache"))

	serve(r, http.MethodDelete, "/blogs/1", nil)
	assert.False(t, mr.Exists("response:blogs:/blogs/published"))
	assert.Equal(t, "MISS", serve(r, http.MethodGet, "/blogs/published", nil).Header().Get("X-Cache"))

	serve(r, http.MethodGet, "/blogs/missing", nil)
	assert.False(t, mr.Exists("response:blogs:/blogs/missing"))

	assert.Equal(t, 2, collector.hits)
	assert.Equal(t, 3, collector.misses)
}

func TestMetricsAndCORS(t *testing.T) {
	collector := &countingCollector{}
	r := gin.New()
	r.Use(Metrics(collector), CORS("https://admin.example.com"))
	r.GET("/blogs/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := serve(r, http.MethodGet, "/blogs/42", nil)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = serve(r, http.MethodOptions, "/blogs/42", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	serve(r, http.MethodGet, "/nowhere", nil)

	require.Len(t, collector.routes, 3)
	assert.Equal(t, "/blogs/:id", collector.routes[0])
	assert.Equal(t, http.StatusNoContent, collector.statuses[0])
	assert.Equal(t, "unmatched", collector.routes[2])
}
