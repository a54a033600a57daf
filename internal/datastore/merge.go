package datastore

import (
	"sales-dashboard/internal/models"
)

type MergeStats struct {
	Records                int `json:"records"`
	UnmatchedCategories    int `json:"unmatched_categories"`
	UnmatchedSubcategories int `json:"unmatched_subcategories"`
	UnmatchedCustomers     int `json:"unmatched_customers"`
	UnmatchedCountries     int `json:"unmatched_countries"`
	MissingAge             int `json:"missing_age"`
}

// Merge left-joins every transaction to the category, subcategory and
// customer (with country) lookups. The result has exactly one record per
// transaction, in input order; unmatched keys leave the field nil.
// Merge does not modify its inputs.
func Merge(transactions []models.Transaction, ref *ReferenceData) []models.EnrichedRecord {
	if ref == nil {
		ref = &ReferenceData{}
	}

	profiles := customerProfiles(ref)
	records := make([]models.EnrichedRecord, len(transactions))

	for i, tx := range transactions {
		rec := models.EnrichedRecord{Transaction: tx}

		if name, ok := ref.Categories[tx.ProdCatCode]; ok {
			rec.Category = &name
		}
		if name, ok := ref.Subcategories[tx.ProdSubcatCode]; ok {
			rec.Subcategory = &name
		}
		if profile, ok := profiles[tx.CustomerID]; ok {
			rec.Customer = profile
			if profile.DOB != nil {
				age := AgeAt(*profile.DOB, tx.Date)
				rec.Age = &age
			}
		}

		records[i] = rec
	}

	return records
}

// customerProfiles joins each customer to its country and indexes the
// result by customer id. Profiles are shared between records and must be
// treated as read-only.
func customerProfiles(ref *ReferenceData) map[string]*models.CustomerProfile {
	profiles := make(map[string]*models.CustomerProfile, len(ref.Customers))
	for id, c := range ref.Customers {
		profile := &models.CustomerProfile{Customer: c}
		if country, ok := ref.Countries[c.CountryCode]; ok {
			name := country.Name
			profile.CountryName = &name
		}
		profiles[id] = profile
	}
	return profiles
}

func Summarize(records []models.EnrichedRecord) MergeStats {
	stats := MergeStats{Records: len(records)}
	for _, rec := range records {
		if rec.Category == nil {
			stats.UnmatchedCategories++
		}
		if rec.Subcategory == nil {
			stats.UnmatchedSubcategories++
		}
		if rec.Customer == nil {
			stats.UnmatchedCustomers++
		} else if rec.Customer.CountryName == nil {
			stats.UnmatchedCountries++
		}
		if rec.Age == nil {
			stats.MissingAge++
		}
	}
	return stats
}
