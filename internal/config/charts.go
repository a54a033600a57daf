package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChartsConfig controls chart presentation only; it never affects the
// data behind the charts.
type ChartsConfig struct {
	ChannelColors  map[string]string `yaml:"channel_colors" json:"channel_colors"`
	CurrencyPrefix string            `yaml:"currency_prefix" json:"currency_prefix"`
	AgeBins        int               `yaml:"age_bins" json:"age_bins"`
	Titles         ChartTitles       `yaml:"titles" json:"titles"`
	Tabs           TabLabels         `yaml:"tabs" json:"-"`
}

type ChartTitles struct {
	WeekdaySales  string `yaml:"weekday_sales" json:"weekday_sales"`
	AgeByChannel  string `yaml:"age_by_channel" json:"age_by_channel"`
	CategorySales string `yaml:"category_sales" json:"category_sales"`
}

type TabLabels struct {
	GlobalSales string `yaml:"global_sales"`
	Products    string `yaml:"products"`
}

func DefaultCharts() ChartsConfig {
	return ChartsConfig{
		ChannelColors: map[string]string{
			"Flagship store": "MediumSlateBlue",
			"e-Shop":         "LightBlue",
			"TeleShop":       "LightGray",
			"MBR":            "MediumPurple",
		},
		CurrencyPrefix: "$",
		AgeBins:        20,
		Titles: ChartTitles{
			WeekdaySales:  "Transactions by weekday and sales channel",
			AgeByChannel:  "Customer age by sales channel",
			CategorySales: "Category sales by channel",
		},
		Tabs: TabLabels{
			GlobalSales: "Global sales",
			Products:    "Products",
		},
	}
}

// LoadCharts reads a YAML file over the defaults. Keys absent from the
// file keep their default; channel colours are merged per channel.
func LoadCharts(path string) (ChartsConfig, error) {
	charts := DefaultCharts()

	data, err := os.ReadFile(path)
	if err != nil {
		return charts, fmt.Errorf("read charts config: %w", err)
	}

	var overlay ChartsConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return charts, fmt.Errorf("parse charts config %s: %w", path, err)
	}

	for channel, color := range overlay.ChannelColors {
		charts.ChannelColors[channel] = color
	}
	if overlay.CurrencyPrefix != "" {
		charts.CurrencyPrefix = overlay.CurrencyPrefix
	}
	if overlay.AgeBins != 0 {
		charts.AgeBins = overlay.AgeBins
	}
	if overlay.Titles.WeekdaySales != "" {
		charts.Titles.WeekdaySales = overlay.Titles.WeekdaySales
	}
	if overlay.Titles.AgeByChannel != "" {
		charts.Titles.AgeByChannel = overlay.Titles.AgeByChannel
	}
	if overlay.Titles.CategorySales != "" {
		charts.Titles.CategorySales = overlay.Titles.CategorySales
	}
	if overlay.Tabs.GlobalSales != "" {
		charts.Tabs.GlobalSales = overlay.Tabs.GlobalSales
	}
	if overlay.Tabs.Products != "" {
		charts.Tabs.Products = overlay.Tabs.Products
	}

	return charts, nil
}
