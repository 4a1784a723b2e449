package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/pkg"
)

func TestRenderError(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		message string
		want    string
	}{
		{"explicit message", http.StatusNotFound, "not found", "not found"},
		{"status text fallback", http.StatusTooManyRequests, "", "Too Many Requests"},
		{"internal", http.StatusInternalServerError, "boom", "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Accept", "text/html")

			renderError(c, tt.code, tt.message)

			if w.Code != tt.code {
				t.Fatalf("status = %d; want %d", w.Code, tt.code)
			}
			if !c.IsAborted() {
				t.Error("context should be aborted")
			}
			var resp pkg.Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Code != tt.code || resp.Message != tt.want || resp.Data != nil {
				t.Errorf("response = %+v; want code %d message %q", resp, tt.code, tt.want)
			}
		})
	}
}
