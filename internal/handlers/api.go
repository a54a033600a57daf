package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

const maxAgeBins = 200

var cacheHeaders = map[string]string{
	"Cache-Control": "public, max-age=300",
}

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

func (h *APIHandlers) HandleWeekdaySales(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.WeekdaySales(), cacheHeaders)
}

func (h *APIHandlers) HandleAgeByChannel(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.AgeByChannel(), cacheHeaders)
}

func (h *APIHandlers) HandleAgeHistogram(w http.ResponseWriter, r *http.Request) {
	bins, err := queryInt(r, "bins", services.DefaultAgeBins, 1, maxAgeBins)
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccessWithHeaders(w, h.analytics.AgeHistogram(bins), cacheHeaders)
}

// HandleCategorySales returns revenue per category and channel. limit=0
// returns every row.
func (h *APIHandlers) HandleCategorySales(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0, 0, 1<<20)
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccessWithHeaders(w, h.analytics.CategorySales(limit), cacheHeaders)
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

// HandleNotFound keeps unknown /api/ paths from falling through to the
// dashboard page.
func (h *APIHandlers) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	errors.WriteError(w, h.logger, errors.NotFound("no such endpoint: "+r.URL.Path), observability.GetRequestID(r.Context()))
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}

// queryInt reads an optional integer query parameter bounded to [lo, hi].
func queryInt(r *http.Request, name string, def, lo, hi int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.BadRequestWrap(err, "query parameter "+name+" must be an integer").
			WithDetails("%s=%q", name, raw)
	}
	if v < lo || v > hi {
		return 0, errors.Validation("query parameter "+name+" is out of range").
			WithDetails("%s=%d, want %d..%d", name, v, lo, hi)
	}
	return v, nil
}
