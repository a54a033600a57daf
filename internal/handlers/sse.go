package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
)

const maxTableRows = 50

var categoryTableTemplate = template.Must(template.New("categoryTable").Parse(`
<div id="category-content">
<table class="modern-table">
<thead><tr><th>Category</th><th>Subcategory</th><th>Channel</th><th>Revenue</th><th>Quantity</th><th>Orders</th></tr></thead>
<tbody>
{{range $i, $item := .Data}}{{if lt $i $.MaxRows}}<tr>
<td><span class="category-badge">{{.Category}}</span></td>
<td>{{.Subcategory}}</td>
<td>{{.StoreType}}</td>
<td><strong>{{$.Currency}}{{printf "%.2f" .Revenue}}</strong></td>
<td>{{.Quantity}}</td>
<td>{{.Transactions}}</td>
</tr>{{end}}{{end}}
</tbody>
</table>
</div>`))

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
	charts    config.ChartsConfig
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger, charts config.ChartsConfig) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
		charts:    charts,
	}
}

type templateData struct {
	Data     []models.CategorySales
	MaxRows  int
	Currency string
}

func (h *SSEHandlers) renderCategoryTable(data []models.CategorySales) (string, error) {
	var buf strings.Builder

	if len(data) > maxTableRows {
		data = data[:maxTableRows]
	}

	tmplData := templateData{Data: data, MaxRows: maxTableRows, Currency: h.charts.CurrencyPrefix}
	err := categoryTableTemplate.Execute(&buf, tmplData)
	return buf.String(), err
}

// presentationSignals carries the chart styling every chart needs.
func (h *SSEHandlers) presentationSignals() map[string]any {
	return map[string]any{
		"channels":       h.analytics.Channels(),
		"channelColors":  h.charts.ChannelColors,
		"chartTitles":    h.charts.Titles,
		"currencyPrefix": h.charts.CurrencyPrefix,
	}
}

func (h *SSEHandlers) patchSignals(sse *datastar.ServerSentEventGenerator, signals map[string]any) bool {
	jsonData, err := json.Marshal(signals)
	if err != nil {
		h.logger.Error("marshal signals", "error", err)
		return false
	}
	if err := sse.PatchSignals(jsonData); err != nil {
		h.logger.Warn("patch signals", "error", err)
		return false
	}
	return true
}

func flush(w http.ResponseWriter) {
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleWeekdaySales(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	signals := h.presentationSignals()
	signals["weekdayData"] = h.analytics.WeekdaySales()
	if !h.patchSignals(sse, signals) {
		return
	}

	sse.PatchElements(`<div id="weekday-content">✅ Weekday sales chart data loaded</div>`)
	flush(w)
}

func (h *SSEHandlers) HandleAgeByChannel(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	signals := h.presentationSignals()
	signals["ageData"] = h.analytics.AgeHistogram(h.charts.AgeBins)
	if !h.patchSignals(sse, signals) {
		return
	}

	sse.PatchElements(`<div id="age-content">✅ Age chart data loaded</div>`)
	flush(w)
}

func (h *SSEHandlers) HandleCategorySales(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderCategoryTable(h.analytics.CategorySales(maxTableRows))
	if err != nil {
		h.logger.Error("render category table", "error", err)
		return
	}

	sse.PatchElements(html)
	flush(w)
}

func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderCategoryTable(h.analytics.CategorySales(maxTableRows))
	if err != nil {
		h.logger.Error("render category table", "error", err)
		return
	}
	sse.PatchElements(html)

	// Send all signals in one call
	signals := h.presentationSignals()
	signals["weekdayData"] = h.analytics.WeekdaySales()
	signals["ageData"] = h.analytics.AgeHistogram(h.charts.AgeBins)
	if !h.patchSignals(sse, signals) {
		return
	}

	flush(w)
}
