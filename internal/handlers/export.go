package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"sales-dashboard/internal/datastore"
	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type exportFunc func(io.Writer, []models.EnrichedRecord) error

// HandleExportCSV downloads the enriched table as CSV.
func (h *APIHandlers) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "csv", csvContentType, datastore.WriteCSV)
}

// HandleExportXLSX downloads the enriched table as a single-sheet workbook.
func (h *APIHandlers) HandleExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "xlsx", xlsxContentType, datastore.WriteXLSX)
}

// export renders into memory first so a failure can still be reported as
// a JSON error instead of a truncated download.
func (h *APIHandlers) export(w http.ResponseWriter, r *http.Request, ext, contentType string, write exportFunc) {
	requestID := observability.GetRequestID(r.Context())
	_, span := observability.StartSpan(r.Context(), "export."+ext)
	defer func() {
		span.Finish()
		span.Log(h.logger)
	}()

	records := h.analytics.Records()
	span.SetTag("records", strconv.Itoa(len(records)))

	var buf bytes.Buffer
	if err := write(&buf, records); err != nil {
		span.SetError(err)
		errors.WriteError(w, h.logger, errors.InternalWrap(err, "failed to export "+ext), requestID)
		return
	}

	filename := fmt.Sprintf("enriched-%s.%s", time.Now().UTC().Format("20060102"), ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("export write interrupted", "format", ext, "error", err, "request_id", requestID)
	}
}
