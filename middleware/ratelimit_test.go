package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)

	if !limiter.Allow("1.2.3.4") {
		t.Errorf("expected first request to be allowed")
	}
	if !limiter.Allow("1.2.3.4") {
		t.Errorf("expected second request to be allowed")
	}
	if limiter.Allow("1.2.3.4") {
		t.Errorf("expected third request to be rejected")
	}

	// Other keys have their own window.
	if !limiter.Allow("5.6.7.8") {
		t.Errorf("expected request from another key to be allowed")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	limiter := NewRateLimiter(1, 20*time.Millisecond)

	if !limiter.Allow("1.2.3.4") {
		t.Errorf("expected first request to be allowed")
	}
	if limiter.Allow("1.2.3.4") {
		t.Errorf("expected second request to be rejected inside the window")
	}

	time.Sleep(30 * time.Millisecond)
	if !limiter.Allow("1.2.3.4") {
		t.Errorf("expected request to be allowed after the window expired")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/data", RateLimitMiddleware(1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("GET", "/data", nil))
	if first.Code != http.StatusOK {
		t.Errorf("expected 200 for first request, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("GET", "/data", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 for second request, got %d", second.Code)
	}
}
