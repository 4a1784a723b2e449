package gate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/module/resource"
)

func TestModule_RegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl, err := NewController(gates(2))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	m := NewModule(resource.NewHandler[domain.Gate, Request](ctrl))

	r := gin.New()
	m.RegisterRoutes(r.Group("/api/v1"))

	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/api/v1/gates?type=entry", "", http.StatusOK},
		{http.MethodPost, "/api/v1/gates", `{"code":"G50","name":"East","station_id":"st-1","type":"exit","status":"online","ip_address":"10.1.0.50"}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/gates", `{"code":"G51","name":"East","station_id":"st-1","type":"exit","status":"online","ip_address":"not-an-ip"}`, http.StatusBadRequest},
		{http.MethodPost, "/api/v1/gates", `{"code":"G01","name":"Dup","station_id":"st-1","type":"exit","status":"online"}`, http.StatusConflict},
		{http.MethodPut, "/api/v1/gates/g-02", `{"code":"G02","name":"West","station_id":"st-1","type":"entry","status":"offline"}`, http.StatusOK},
		{http.MethodDelete, "/api/v1/gates/g-09?confirm=true", "", http.StatusOK},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		if tt.body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s %s = %d; want %d (%s)", tt.method, tt.path, w.Code, tt.want, w.Body.String())
		}
	}
}
