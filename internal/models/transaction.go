package models

import "time"

type StoreType string

const (
	StoreFlagship StoreType = "Flagship store"
	StoreEShop    StoreType = "e-Shop"
	StoreTeleShop StoreType = "TeleShop"
	StoreMBR      StoreType = "MBR"
)

var KnownStoreTypes = []StoreType{StoreFlagship, StoreEShop, StoreTeleShop, StoreMBR}

// Transaction is one row of a transaction batch file. Qty, Rate and Tax
// stay zero when the batch file does not carry those columns.
type Transaction struct {
	SourceFile     string
	RowIndex       string
	TransactionID  string
	Date           time.Time
	CustomerID     string
	ProdCatCode    string
	ProdSubcatCode string
	StoreType      StoreType
	Quantity       int
	Rate           float64
	Tax            float64
	TotalAmount    float64
}

type CountryCode struct {
	Code string
	Name string
}

type Customer struct {
	ID          string
	DOB         *time.Time
	Gender      string
	CityCode    string
	CountryCode string
}

type ProductCategory struct {
	CatCode     string
	Category    string
	SubcatCode  string
	Subcategory string
}

// CustomerProfile is a customer joined with its country. CountryName is nil
// when the customer's country code has no reference row.
type CustomerProfile struct {
	Customer
	CountryName *string
}

// EnrichedRecord is a transaction widened with reference data. Every
// pointer field is nil when the corresponding join found no match.
type EnrichedRecord struct {
	Transaction
	Category    *string
	Subcategory *string
	Customer    *CustomerProfile
	Age         *int
}
