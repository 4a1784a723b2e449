package gateuser

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/module/resource"
)

func TestModule_StatusRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl, err := NewController(users(2))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	r := gin.New()
	NewModule(resource.NewHandler[domain.GateUser, Request](ctrl)).RegisterRoutes(r.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/gate-users/gu-01/status", strings.NewReader(`{"status":"disabled"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Data domain.GateUser `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Status != domain.GateUserDisabled {
		t.Errorf("status = %q; want disabled", resp.Data.Status)
	}

	req = httptest.NewRequest(http.MethodPatch, "/api/v1/gate-users/gu-01/status", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing status = %d; want 400", w.Code)
	}
}

func TestModule_CreateValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl, err := NewController(nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	r := gin.New()
	NewModule(resource.NewHandler[domain.GateUser, Request](ctrl)).RegisterRoutes(r.Group("/api/v1"))

	tests := []struct {
		body string
		want int
	}{
		{`{"username":"ops1","name":"Ops","role":"operator"}`, http.StatusCreated},
		{`{"username":"ops1","name":"Again","role":"operator"}`, http.StatusConflict},
		{`{"username":"ops2","name":"Ops","role":"root"}`, http.StatusBadRequest},
		{`{"username":"x","name":"Short","role":"admin"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/gate-users", strings.NewReader(tt.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("POST %s = %d; want %d", tt.body, w.Code, tt.want)
		}
	}
}
