package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupRateLimitRouter(rps float64, burst int, onLimit func()) *gin.Engine {
	r := gin.New()
	r.Use(RateLimit(rps, burst, onLimit))
	r.GET("/stations", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	limited := 0
	r := setupRateLimitRouter(0.001, 2, func() { limited++ })

	codes := make([]int, 0, 4)
	for range 4 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stations", nil))
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests && w.Header().Get("Retry-After") == "" {
			t.Error("expected Retry-After header on 429")
		}
	}

	want := []int{200, 200, 429, 429}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("status codes = %v; want %v", codes, want)
		}
	}
	if limited != 2 {
		t.Errorf("onLimit called %d times; want 2", limited)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := setupRateLimitRouter(0, 0, func() { t.Error("onLimit should not be called") })
	for range 50 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stations", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d; want 200", w.Code)
		}
	}
}

func TestRateLimit_NilCallback(t *testing.T) {
	r := setupRateLimitRouter(0.001, 1, nil)
	for range 2 {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stations", nil))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stations", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d; want 429", w.Code)
	}
}
