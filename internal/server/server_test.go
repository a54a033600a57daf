package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testTemplates() *TemplateHandlers {
	return &TemplateHandlers{
		Dashboard: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("dashboard"))
		},
	}
}

func TestServer_Routes(t *testing.T) {
	srv := NewServer(services.NewAnalytics(testLogger()), testLogger(), testTemplates())

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/admin/stats", http.StatusOK},
		{http.MethodGet, "/api/weekday-sales", http.StatusOK},
		{http.MethodGet, "/api/age-by-channel", http.StatusOK},
		{http.MethodGet, "/api/age-histogram?bins=4", http.StatusOK},
		{http.MethodGet, "/api/category-sales", http.StatusOK},
		{http.MethodGet, "/api/export/csv", http.StatusOK},
		{http.MethodGet, "/api/export/xlsx", http.StatusOK},
		{http.MethodGet, "/sse/weekday-sales", http.StatusOK},
		{http.MethodGet, "/sse/age-by-channel", http.StatusOK},
		{http.MethodGet, "/sse/category-sales", http.StatusOK},
		{http.MethodGet, "/sse/refresh-all", http.StatusOK},
		{http.MethodPost, "/api/weekday-sales", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
		{http.MethodGet, "/metrics", http.StatusOK}, // falls through to the dashboard without metrics
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestServer_WithMetrics(t *testing.T) {
	metrics := observability.NewMetrics()
	srv := NewServer(services.NewAnalytics(testLogger()), testLogger(), testTemplates(), WithMetrics(metrics))

	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, `sales_dashboard_http_requests_total{code="200",method="get",route="GET /health"} 1`) {
		t.Errorf("health request should be counted under its route, got:\n%s", body)
	}
}

func TestServer_WithCharts(t *testing.T) {
	charts := config.DefaultCharts()
	charts.CurrencyPrefix = "PLN "
	srv := NewServer(services.NewAnalytics(testLogger()), testLogger(), testTemplates(), WithCharts(charts))

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sse/weekday-sales", nil))
	if !strings.Contains(w.Body.String(), "PLN ") {
		t.Error("configured currency prefix should reach the SSE signals")
	}
}

func TestGracefulServer_ShutdownOnCancel(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{ShutdownTimeout: 5 * time.Second}}
	httpServer := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	gs := NewGracefulServer(httpServer, testLogger(), cfg)

	var hookCalled atomic.Bool
	gs.RegisterShutdownHook(func(ctx context.Context) error {
		hookCalled.Store(true)
		return nil
	})

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- gs.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	if !hookCalled.Load() {
		t.Error("shutdown hook should run")
	}
}

func TestGracefulServer_HookError(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{ShutdownTimeout: time.Second}}
	gs := NewGracefulServer(&http.Server{}, testLogger(), cfg)

	errHook := errors.New("flush failed")
	gs.RegisterShutdownHook(func(ctx context.Context) error { return errHook })

	if err := gs.shutdown(t.Context()); !errors.Is(err, errHook) {
		t.Errorf("expected hook error, got %v", err)
	}
}
