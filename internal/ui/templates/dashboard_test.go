package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-dashboard/internal/config"
)

func TestDashboard_Render(t *testing.T) {
	view := NewDashboardView(config.DashboardConfig{
		Title:    "Sales Channels",
		Subtitle: "Retail transactions",
		Charts:   config.DefaultCharts(),
	})

	var sb strings.Builder
	require.NoError(t, Dashboard(view).Render(t.Context(), &sb))
	html := sb.String()

	for _, want := range []string{
		"<title>Sales Channels</title>",
		"<h1>Sales Channels</h1>",
		"Retail transactions",
		"Global sales",
		"Products",
		"Transactions by weekday and sales channel",
		"Customer age by sales channel",
		`id="weekday-chart"`,
		`id="age-chart"`,
		`id="category-content"`,
		"@get('/sse/refresh-all')",
		"/api/export/xlsx",
	} {
		assert.Contains(t, html, want)
	}
}

func TestDashboard_EscapesLabels(t *testing.T) {
	var sb strings.Builder
	err := Dashboard(DashboardView{Title: `<b>"x"</b>`}).Render(t.Context(), &sb)
	require.NoError(t, err)

	assert.NotContains(t, sb.String(), "<b>")
	assert.Contains(t, sb.String(), "&lt;b&gt;")
}
