package server

import (
	"log/slog"
	"net/http"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/handlers"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

type Server struct {
	analytics   *services.Analytics
	mux         *http.ServeMux
	logger      *slog.Logger
	metrics     *observability.Metrics
	charts      config.ChartsConfig
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

type Option func(*Server)

// WithMetrics instruments every route and exposes GET /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

func WithCharts(charts config.ChartsConfig) Option {
	return func(s *Server) { s.charts = charts }
}

func NewServer(analytics *services.Analytics, logger *slog.Logger, templateHandlers *TemplateHandlers, opts ...Option) *Server {
	s := &Server{
		analytics: analytics,
		mux:       http.NewServeMux(),
		logger:    logger,
		charts:    config.DefaultCharts(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.apiHandlers = handlers.NewAPIHandlers(analytics, logger)
	s.sseHandlers = handlers.NewSSEHandlers(analytics, logger, s.charts)
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard routes
	s.handle("GET /", templateHandlers.Dashboard)
	s.handle("GET /health", s.apiHandlers.HandleHealth)
	s.handle("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.handle("GET /api/weekday-sales", s.apiHandlers.HandleWeekdaySales)
	s.handle("GET /api/age-by-channel", s.apiHandlers.HandleAgeByChannel)
	s.handle("GET /api/age-histogram", s.apiHandlers.HandleAgeHistogram)
	s.handle("GET /api/category-sales", s.apiHandlers.HandleCategorySales)
	s.handle("GET /api/export/csv", s.apiHandlers.HandleExportCSV)
	s.handle("GET /api/export/xlsx", s.apiHandlers.HandleExportXLSX)
	s.handle("GET /api/", s.apiHandlers.HandleNotFound)

	// Datastar SSE endpoints
	s.handle("GET /sse/weekday-sales", s.sseHandlers.HandleWeekdaySales)
	s.handle("GET /sse/age-by-channel", s.sseHandlers.HandleAgeByChannel)
	s.handle("GET /sse/category-sales", s.sseHandlers.HandleCategorySales)
	s.handle("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)

	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}
}

// handle registers h under pattern, labelled with the pattern itself so
// metric cardinality stays bounded by the route table.
func (s *Server) handle(pattern string, h http.HandlerFunc) {
	if s.metrics == nil {
		s.mux.HandleFunc(pattern, h)
		return
	}
	s.mux.Handle(pattern, s.metrics.InstrumentHandler(pattern, h))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
