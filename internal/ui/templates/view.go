package templates

import "sales-dashboard/internal/config"

// DashboardView holds the labels rendered into the page shell. Chart data
// arrives separately over SSE.
type DashboardView struct {
	Title         string
	Subtitle      string
	GlobalTab     string
	ProductsTab   string
	WeekdayTitle  string
	AgeTitle      string
	CategoryTitle string
}

func NewDashboardView(cfg config.DashboardConfig) DashboardView {
	return DashboardView{
		Title:         cfg.Title,
		Subtitle:      cfg.Subtitle,
		GlobalTab:     cfg.Charts.Tabs.GlobalSales,
		ProductsTab:   cfg.Charts.Tabs.Products,
		WeekdayTitle:  cfg.Charts.Titles.WeekdaySales,
		AgeTitle:      cfg.Charts.Titles.AgeByChannel,
		CategoryTitle: cfg.Charts.Titles.CategorySales,
	}
}
