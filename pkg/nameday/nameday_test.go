package nameday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fkventa/clubsite/pkg/config"
)

func newTestClient(t *testing.T, upstream string) *Client {
	t.Helper()
	return NewClient(config.NamedayConfig{
		BaseURL:  upstream,
		Country:  "lv",
		TodayTTL: time.Hour,
		DateTTL:  24 * time.Hour,
	})
}

func TestTodayParsesAndCaches(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if got := r.URL.Query().Get("country"); got != "lv" {
			t.Errorf("expected country lv, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"nameday":{"lv":"Aigars, Vilhelmīne"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	res := c.Today(ctx)
	if res.Source != SourceAPI {
		t.Fatalf("expected source api, got %s (error %q)", res.Source, res.Error)
	}
	if len(res.Names) != 2 || res.Names[0] != "Aigars" || res.Names[1] != "Vilhelmīne" {
		t.Fatalf("unexpected names: %v", res.Names)
	}
	if res.Date == "" {
		t.Fatal("expected formatted date")
	}

	// Second call must be served from cache.
	_ = c.Today(ctx)
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected 1 upstream call, got %d", n)
	}
}

func TestLookupFallsBackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	res := c.Today(context.Background())
	if res.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %s", res.Source)
	}
	if len(res.Names) == 0 {
		t.Fatal("fallback must still carry a non-empty names list")
	}
	if res.Error == "" {
		t.Fatal("fallback must report the upstream error")
	}
}

func TestFallbackIsNotCached(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"nameday":{"lv":"Bērtulis"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	if res := c.Today(ctx); res.Source != SourceFallback {
		t.Fatalf("expected fallback on first call, got %s", res.Source)
	}
	if res := c.Today(ctx); res.Source != SourceAPI {
		t.Fatalf("expected api source after upstream recovery, got %s", res.Source)
	}
}

func TestRefreshDropsCache(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"nameday":{"lv":"Aigars"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	_ = c.Today(ctx)
	c.Refresh()
	_ = c.Today(ctx)

	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("expected 2 upstream calls after refresh, got %d", n)
	}
}

func TestForDateFormatsLatvianDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"nameday":{"lv":"Jānis"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	res := c.ForDate(context.Background(), time.Date(2026, time.June, 24, 0, 0, 0, 0, time.UTC))
	if res.Date != "24. jūnijs" {
		t.Fatalf("expected \"24. jūnijs\", got %q", res.Date)
	}
}
