package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/query"
)

type widget struct {
	domain.BaseModel
	Code   string `gorm:"uniqueIndex;size:32" json:"code"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type widgetRequest struct {
	Code   string `json:"code" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=on off"`
}

func (r widgetRequest) Entity(id string) widget {
	return widget{BaseModel: domain.BaseModel{ID: id}, Code: r.Code, Name: r.Name, Status: r.Status}
}

func widgetKind() query.Kind[widget] {
	return query.Kind[widget]{
		Name:  "widget",
		ID:    func(w widget) string { return w.ID },
		SetID: func(w *widget, id string) { w.ID = id },
		Search: []query.Field[widget]{
			func(w widget) string { return w.Code },
			func(w widget) string { return w.Name },
		},
		Facets: map[string]query.Field[widget]{
			"status": func(w widget) string { return w.Status },
		},
		Compare: query.Ascending(func(w widget) string { return w.Code }),
		Key:     func(w widget) string { return w.Code },
		Init: func(w *widget, now time.Time) {
			w.CreatedAt, w.UpdatedAt = now, now
			if w.Status == "" {
				w.Status = "on"
			}
		},
		Merge: func(dst *widget, draft widget, now time.Time) {
			dst.Code, dst.Name, dst.UpdatedAt = draft.Code, draft.Name, now
			if draft.Status != "" {
				dst.Status = draft.Status
			}
		},
		SetStatus: func(w *widget, status string, now time.Time) error {
			if status != "on" && status != "off" {
				return errors.New("status must be on or off")
			}
			w.Status, w.UpdatedAt = status, now
			return nil
		},
	}
}

// widgets returns n widgets W01..Wnn with ids w-01..w-nn; every third is off.
func widgets(n int) []widget {
	out := make([]widget, 0, n)
	for i := 1; i <= n; i++ {
		status := "on"
		if i%3 == 0 {
			status = "off"
		}
		out = append(out, widget{
			BaseModel: domain.BaseModel{ID: fmt.Sprintf("w-%02d", i)},
			Code:      fmt.Sprintf("W%02d", i),
			Name:      fmt.Sprintf("Widget %d", i),
			Status:    status,
		})
	}
	return out
}

type fakeRecorder struct {
	mu        sync.Mutex
	mutations []string
	sizes     map[string]int
}

func newFakeRecorder() *fakeRecorder { return &fakeRecorder{sizes: map[string]int{}} }

func (f *fakeRecorder) Mutation(kind, op, outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, kind+"/"+op+"/"+outcome)
}

func (f *fakeRecorder) CollectionSize(kind string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sizes[kind] = n
}

func setupRouter(t *testing.T, n int, opts ...HandlerOption) (*gin.Engine, *Handler[widget, widgetRequest]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl, err := query.New(widgetKind(), widgets(n), query.WithPageSize(5))
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	h := NewHandler[widget, widgetRequest](ctrl, opts...)

	r := gin.New()
	g := r.Group("/api/v1/widgets")
	h.Register(g)
	h.RegisterStatus(g)
	return r, h
}

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func do[T any](t *testing.T, r http.Handler, method, path, body string) (int, envelope[T]) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func codesOf(items []widget) []string {
	out := make([]string, len(items))
	for i, w := range items {
		out[i] = w.Code
	}
	return out
}
