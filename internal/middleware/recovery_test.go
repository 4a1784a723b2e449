package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/pkg"
)

func setupRecoveryRouter(log *slog.Logger, after *bool) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(log))
	r.GET("/panic", func(c *gin.Context) {
		panic("gate controller exploded")
	}, func(c *gin.Context) {
		if after != nil {
			*after = true
		}
	})
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRecovery_NoPanic_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	r := setupRecoveryRouter(newTestLogger(&buf), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("got %d %q; want 200 ok", w.Code, w.Body.String())
	}
	if buf.Len() != 0 {
		t.Errorf("expected no log output, got:\n%s", buf.String())
	}
}

func TestRecovery_Panic_JSONResponse(t *testing.T) {
	var buf bytes.Buffer
	after := false
	r := setupRecoveryRouter(newTestLogger(&buf), &after)

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q; want application/json", ct)
	}
	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Code != http.StatusInternalServerError || resp.Message != "internal server error" {
		t.Errorf("response = %+v", resp)
	}
	if after {
		t.Error("handlers after the panic should not run")
	}
}

func TestRecovery_Panic_LogsDetails(t *testing.T) {
	var buf bytes.Buffer
	r := setupRecoveryRouter(newTestLogger(&buf), nil)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/panic", nil))

	out := buf.String()
	for _, want := range []string{"level=ERROR", "panic recovered", "gate controller exploded", "method=GET", "path=/panic", "stack="} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %q, got:\n%s", want, out)
		}
	}
}
