package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type countingLimiter struct {
	counts map[string]int
	keys   []string
}

func (l *countingLimiter) allow(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	l.counts[key]++
	l.keys = append(l.keys, key)
	return l.counts[key] <= limit, nil
}

func TestRateLimiterWith(t *testing.T) {
	t.Run("blocks after the limit", func(t *testing.T) {
		limiter := &countingLimiter{counts: map[string]int{}}
		r := gin.New()
		r.GET("/ping", RateLimiterWith(limiter.allow, 2, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			codes = append(codes, w.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
		assert.Equal(t, "ip:192.0.2.1", limiter.keys[0])
	})

	t.Run("signed-in callers are keyed by user", func(t *testing.T) {
		limiter := &countingLimiter{counts: map[string]int{}}
		r := gin.New()
		r.GET("/ping", withUser("u1"), RateLimiterWith(limiter.allow, 5, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"user:u1"}, limiter.keys)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("limiter failure", func(t *testing.T) {
		failing := func(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
			return false, errors.New("redis down")
		}
		r := gin.New()
		r.GET("/ping", RateLimiterWith(failing, 5, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
