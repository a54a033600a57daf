package datastore

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sales-dashboard/internal/models"
)

// ReferenceData holds the lookup tables used to annotate transactions.
//
// Categories and Subcategories are derived independently from Products,
// each keeping the first row seen per code. Later rows with the same code
// are dropped silently; the Shadowed counters record how many were.
type ReferenceData struct {
	Countries     map[string]models.CountryCode
	Customers     map[string]models.Customer
	Products      []models.ProductCategory
	Categories    map[string]string
	Subcategories map[string]string

	DuplicateCountries    int
	DuplicateCustomers    int
	ShadowedCategories    int
	ShadowedSubcategories int
}

func LoadReferenceData(ctx context.Context, countryCodesFile, customersFile, productInfoFile string) (*ReferenceData, error) {
	ref := &ReferenceData{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		countries, dups, err := loadCountryCodes(countryCodesFile)
		if err != nil {
			return err
		}
		ref.Countries, ref.DuplicateCountries = countries, dups
		return nil
	})

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		customers, dups, err := loadCustomers(customersFile)
		if err != nil {
			return err
		}
		ref.Customers, ref.DuplicateCustomers = customers, dups
		return nil
	})

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		products, err := loadProductInfo(productInfoFile)
		if err != nil {
			return err
		}
		ref.Products = products
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ref.Categories, ref.ShadowedCategories = firstByKey(ref.Products,
		func(p models.ProductCategory) (string, string) { return p.CatCode, p.Category })
	ref.Subcategories, ref.ShadowedSubcategories = firstByKey(ref.Products,
		func(p models.ProductCategory) (string, string) { return p.SubcatCode, p.Subcategory })

	return ref, nil
}

// firstByKey maps each key to the value of its first row. Rows with an
// empty key are ignored.
func firstByKey(products []models.ProductCategory, kv func(models.ProductCategory) (string, string)) (map[string]string, int) {
	out := make(map[string]string, len(products))
	shadowed := 0
	for _, p := range products {
		key, value := kv(p)
		if key == "" {
			continue
		}
		if _, seen := out[key]; seen {
			shadowed++
			continue
		}
		out[key] = value
	}
	return out, shadowed
}

func loadCountryCodes(path string) (map[string]models.CountryCode, int, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, 0, err
	}
	if err := t.require(colCountryCode); err != nil {
		return nil, 0, err
	}

	nameCol := t.column(colCountry)
	if nameCol < 0 {
		nameCol = t.column(colCountryName)
	}
	if nameCol < 0 {
		return nil, 0, &MissingKeyColumnError{File: t.file, Column: colCountry}
	}
	codeCol := t.column(colCountryCode)

	countries := make(map[string]models.CountryCode, len(t.rows))
	dups := 0
	for _, row := range t.rows {
		code := cell(row, codeCol)
		if _, seen := countries[code]; seen {
			dups++
			continue
		}
		countries[code] = models.CountryCode{Code: code, Name: cell(row, nameCol)}
	}

	return countries, dups, nil
}

// loadCustomers keeps the first row per customer id so the customer join
// can never duplicate a transaction.
func loadCustomers(path string) (map[string]models.Customer, int, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, 0, err
	}
	if err := t.require(colCustomerID, colDOB, colCountryCode); err != nil {
		return nil, 0, err
	}

	var (
		idCol      = t.column(colCustomerID)
		dobCol     = t.column(colDOB)
		genderCol  = t.column(colGender)
		cityCol    = t.column(colCityCode)
		countryCol = t.column(colCountryCode)
	)

	customers := make(map[string]models.Customer, len(t.rows))
	dups := 0
	for i, row := range t.rows {
		id := cell(row, idCol)
		if _, seen := customers[id]; seen {
			dups++
			continue
		}

		rawDOB := cell(row, dobCol)
		dob, err := ParseBirthDate(rawDOB)
		if err != nil {
			return nil, 0, &DateParseError{File: t.file, Row: i + 1, Value: rawDOB}
		}

		customers[id] = models.Customer{
			ID:          id,
			DOB:         dob,
			Gender:      cell(row, genderCol),
			CityCode:    cell(row, cityCol),
			CountryCode: cell(row, countryCol),
		}
	}

	return customers, dups, nil
}

func loadProductInfo(path string) ([]models.ProductCategory, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require(colProdCatCode, colProdCat, colProdSubCatCode, colProdSubcat); err != nil {
		return nil, err
	}

	var (
		catCodeCol    = t.column(colProdCatCode)
		catCol        = t.column(colProdCat)
		subcatCodeCol = t.column(colProdSubCatCode)
		subcatCol     = t.column(colProdSubcat)
	)

	products := make([]models.ProductCategory, 0, len(t.rows))
	for _, row := range t.rows {
		products = append(products, models.ProductCategory{
			CatCode:     cell(row, catCodeCol),
			Category:    cell(row, catCol),
			SubcatCode:  cell(row, subcatCodeCol),
			Subcategory: cell(row, subcatCol),
		})
	}

	return products, nil
}
