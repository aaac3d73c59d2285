package middleware

import (
	"bytes"
	"net/http"

	"travel-gateway/cache"
	"travel-gateway/metrics"

	"github.com/gin-gonic/gin"
)

const cacheHeader = "X-Cache"

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache serves public GET responses from a cache.Cache and drops them
// when a mutation on the same resource succeeds.
type ResponseCache struct {
	store   cache.Cache
	metrics metrics.MetricsCollector
}

func NewResponseCache(store cache.Cache, m metrics.MetricsCollector) *ResponseCache {
	if m == nil {
		m = metrics.Nop{}
	}
	return &ResponseCache{store: store, metrics: m}
}

// Cache stores 200 JSON responses under prefix plus the request URI.
// Authenticated callers always read through to the handler.
func (rc *ResponseCache) Cache(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || c.GetString(UserIDKey) != "" {
			c.Next()
			return
		}

		key := prefix + ":" + c.Request.URL.RequestURI()
		if body, ok := rc.store.Get(c.Request.Context(), key); ok {
			rc.metrics.RecordCacheLookup(true)
			c.Header(cacheHeader, "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}
		rc.metrics.RecordCacheLookup(false)

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Header(cacheHeader, "MISS")
		c.Next()

		if rec.Status() == http.StatusOK && rec.body.Len() > 0 {
			rc.store.Set(c.Request.Context(), key, rec.body.Bytes())
		}
	}
}

// Invalidate drops every cached response under prefixes once the wrapped
// handler answered with a non-error status.
func (rc *ResponseCache) Invalidate(prefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		for _, prefix := range prefixes {
			rc.store.InvalidatePrefix(c.Request.Context(), prefix+":")
		}
	}
}
