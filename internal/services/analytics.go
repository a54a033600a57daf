package services

import (
	"cmp"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"sales-dashboard/internal/datastore"
	"sales-dashboard/internal/models"
)

const (
	DefaultAgeBins  = 20
	unknownCategory = "Unknown"
)

var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

type PrecomputedData struct {
	WeekdaySales  []models.WeekdaySales  `json:"weekday_sales"`
	AgeByChannel  []models.AgeCount      `json:"age_by_channel"`
	CategorySales []models.CategorySales `json:"category_sales"`
	Channels      []models.StoreType     `json:"channels"`
	Merge         datastore.MergeStats   `json:"merge"`
	LastModified  time.Time              `json:"last_modified"`
	RecordCount   int64                  `json:"record_count"`

	records []models.EnrichedRecord
}

// Analytics serves chart series computed once from the enriched table.
type Analytics struct {
	mu          sync.RWMutex
	precomputed *PrecomputedData
	logger      *slog.Logger
}

func NewAnalytics(logger *slog.Logger) *Analytics {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analytics{
		precomputed: &PrecomputedData{},
		logger:      logger,
	}
}

// LoadDataset precomputes every series from ds. ds is not retained beyond
// its read-only records slice.
func (a *Analytics) LoadDataset(ds *datastore.Dataset) {
	start := time.Now()
	precomputed := a.computeAnalytics(ds.Records)
	precomputed.Merge = ds.Stats
	precomputed.LastModified = ds.LoadedAt

	a.mu.Lock()
	a.precomputed = precomputed
	a.mu.Unlock()

	a.logger.Info("analytics precomputed",
		"records", precomputed.RecordCount,
		"channels", len(precomputed.Channels),
		"duration", time.Since(start),
	)
}

func (a *Analytics) SetData(records []models.EnrichedRecord) {
	precomputed := a.computeAnalytics(records)
	precomputed.Merge = datastore.Summarize(records)
	precomputed.LastModified = time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.precomputed = precomputed
}

func (a *Analytics) computeAnalytics(records []models.EnrichedRecord) *PrecomputedData {
	type weekdayKey struct {
		day   time.Weekday
		store models.StoreType
	}
	type ageKey struct {
		store models.StoreType
		age   int
	}
	type categoryKey struct {
		category    string
		subcategory string
		store       models.StoreType
	}

	weekdayGroups := make(map[weekdayKey]*models.WeekdaySales)
	ageGroups := make(map[ageKey]int)
	categoryGroups := make(map[categoryKey]*models.CategorySales)
	seenChannels := make(map[models.StoreType]bool)

	for _, rec := range records {
		seenChannels[rec.StoreType] = true

		wk := weekdayKey{day: rec.Date.Weekday(), store: rec.StoreType}
		if weekdayGroups[wk] == nil {
			weekdayGroups[wk] = &models.WeekdaySales{
				Weekday:   wk.day.String(),
				StoreType: rec.StoreType,
			}
		}
		weekdayGroups[wk].Transactions++
		weekdayGroups[wk].Revenue += rec.TotalAmount

		if rec.Age != nil {
			ageGroups[ageKey{store: rec.StoreType, age: *rec.Age}]++
		}

		ck := categoryKey{
			category:    nameOrUnknown(rec.Category),
			subcategory: nameOrUnknown(rec.Subcategory),
			store:       rec.StoreType,
		}
		if categoryGroups[ck] == nil {
			categoryGroups[ck] = &models.CategorySales{
				Category:    ck.category,
				Subcategory: ck.subcategory,
				StoreType:   ck.store,
			}
		}
		categoryGroups[ck].Revenue += rec.TotalAmount
		categoryGroups[ck].Quantity += rec.Quantity
		categoryGroups[ck].Transactions++
	}

	channels := orderChannels(seenChannels)
	rank := make(map[models.StoreType]int, len(channels))
	for i, ch := range channels {
		rank[ch] = i
	}

	weekdaySales := make([]models.WeekdaySales, 0, len(weekdayGroups))
	for _, day := range weekdayOrder {
		for _, ch := range channels {
			if ws, ok := weekdayGroups[weekdayKey{day: day, store: ch}]; ok {
				weekdaySales = append(weekdaySales, *ws)
			}
		}
	}

	ageByChannel := make([]models.AgeCount, 0, len(ageGroups))
	for k, n := range ageGroups {
		ageByChannel = append(ageByChannel, models.AgeCount{StoreType: k.store, Age: k.age, Customers: n})
	}
	slices.SortFunc(ageByChannel, func(x, y models.AgeCount) int {
		if c := cmp.Compare(rank[x.StoreType], rank[y.StoreType]); c != 0 {
			return c
		}
		return cmp.Compare(x.Age, y.Age)
	})

	categorySales := make([]models.CategorySales, 0, len(categoryGroups))
	for _, cs := range categoryGroups {
		categorySales = append(categorySales, *cs)
	}
	slices.SortFunc(categorySales, func(x, y models.CategorySales) int {
		if c := cmp.Compare(y.Revenue, x.Revenue); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Category, y.Category); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Subcategory, y.Subcategory); c != 0 {
			return c
		}
		return cmp.Compare(rank[x.StoreType], rank[y.StoreType])
	})

	return &PrecomputedData{
		WeekdaySales:  weekdaySales,
		AgeByChannel:  ageByChannel,
		CategorySales: categorySales,
		Channels:      channels,
		RecordCount:   int64(len(records)),
		records:       records,
	}
}

// orderChannels lists the known store types first, in their canonical
// order, followed by any other values sorted by name.
func orderChannels(seen map[models.StoreType]bool) []models.StoreType {
	channels := make([]models.StoreType, 0, len(seen))
	for _, st := range models.KnownStoreTypes {
		if seen[st] {
			channels = append(channels, st)
		}
	}

	var extra []models.StoreType
	for st := range seen {
		if !slices.Contains(models.KnownStoreTypes, st) {
			extra = append(extra, st)
		}
	}
	slices.Sort(extra)

	return append(channels, extra...)
}

func nameOrUnknown(name *string) string {
	if name == nil || *name == "" {
		return unknownCategory
	}
	return *name
}

func (a *Analytics) WeekdaySales() []models.WeekdaySales {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.precomputed.WeekdaySales
}

func (a *Analytics) AgeByChannel() []models.AgeCount {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.precomputed.AgeByChannel
}

// AgeHistogram buckets ages into equal-width bins spanning the observed
// age range. Every channel gets the same bin edges.
func (a *Analytics) AgeHistogram(bins int) []models.AgeBin {
	a.mu.RLock()
	defer a.mu.RUnlock()

	counts := a.precomputed.AgeByChannel
	if len(counts) == 0 {
		return []models.AgeBin{}
	}
	if bins <= 0 {
		bins = DefaultAgeBins
	}

	minAge, maxAge := counts[0].Age, counts[0].Age
	for _, c := range counts {
		minAge = min(minAge, c.Age)
		maxAge = max(maxAge, c.Age)
	}

	span := maxAge - minAge + 1
	width := int(math.Ceil(float64(span) / float64(bins)))
	bins = int(math.Ceil(float64(span) / float64(width)))

	result := make([]models.AgeBin, 0, bins*len(a.precomputed.Channels))
	for _, ch := range a.precomputed.Channels {
		chBins := make([]models.AgeBin, bins)
		for i := range chBins {
			chBins[i] = models.AgeBin{
				StoreType: ch,
				From:      minAge + i*width,
				To:        minAge + (i+1)*width - 1,
			}
		}
		for _, c := range counts {
			if c.StoreType == ch {
				chBins[(c.Age-minAge)/width].Customers += c.Customers
			}
		}
		result = append(result, chBins...)
	}

	return result
}

func (a *Analytics) CategorySales(limit int) []models.CategorySales {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if limit <= 0 || len(a.precomputed.CategorySales) <= limit {
		return a.precomputed.CategorySales
	}
	return a.precomputed.CategorySales[:limit]
}

func (a *Analytics) Channels() []models.StoreType {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.precomputed.Channels
}

// Records returns the enriched table. Callers must not modify it.
func (a *Analytics) Records() []models.EnrichedRecord {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.precomputed.records
}

// Utility method for monitoring
func (a *Analytics) Stats() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return map[string]any{
		"record_count":            a.precomputed.RecordCount,
		"last_processed":          a.precomputed.LastModified,
		"channels":                len(a.precomputed.Channels),
		"weekday_series":          len(a.precomputed.WeekdaySales),
		"category_series":         len(a.precomputed.CategorySales),
		"unmatched_categories":    a.precomputed.Merge.UnmatchedCategories,
		"unmatched_subcategories": a.precomputed.Merge.UnmatchedSubcategories,
		"unmatched_customers":     a.precomputed.Merge.UnmatchedCustomers,
		"unmatched_countries":     a.precomputed.Merge.UnmatchedCountries,
		"missing_age":             a.precomputed.Merge.MissingAge,
	}
}
