package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMutation(t *testing.T) {
	m := New()
	m.Mutation("gate", "create", OutcomeOK)
	m.Mutation("gate", "create", OutcomeOK)
	m.Mutation("gate", "delete", OutcomeNoop)

	if got := testutil.ToFloat64(m.mutations.WithLabelValues("gate", "create", OutcomeOK)); got != 2 {
		t.Errorf("create ok = %v; want 2", got)
	}
	if got := testutil.ToFloat64(m.mutations.WithLabelValues("gate", "delete", OutcomeNoop)); got != 1 {
		t.Errorf("delete noop = %v; want 1", got)
	}
}

func TestCollectionSize(t *testing.T) {
	m := New()
	m.CollectionSize("station", 12)
	m.CollectionSize("station", 11)

	if got := testutil.ToFloat64(m.collectionSize.WithLabelValues("station")); got != 11 {
		t.Errorf("station items = %v; want 11", got)
	}
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/api/v1/gates", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "", 404, time.Millisecond)
	m.RateLimited()

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/gates", "200")); got != 1 {
		t.Errorf("requests = %v; want 1", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Errorf("unmatched requests = %v; want 1", got)
	}
	if got := testutil.ToFloat64(m.rateLimited); got != 1 {
		t.Errorf("rate limited = %v; want 1", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.Mutation("gate", "create", OutcomeOK)
	m.CollectionSize("gate", 1)
	m.ObserveRequest("GET", "/", 200, 0)
	m.RateLimited()
}

func TestHandler(t *testing.T) {
	m := New()
	m.Mutation("trip", "update", OutcomeRejected)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	want := `gateadmin_collection_mutations_total{kind="trip",op="update",outcome="rejected"} 1`
	if !strings.Contains(string(body), want) {
		t.Errorf("metrics output missing %q", want)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("expected Go runtime collector output")
	}
}
