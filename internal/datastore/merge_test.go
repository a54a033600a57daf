package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-dashboard/internal/models"
)

func mergeFixture(t *testing.T) ([]models.Transaction, *ReferenceData, []models.EnrichedRecord) {
	t.Helper()
	src := writeFixture(t)

	txs, err := LoadTransactions(context.Background(), src.TransactionsDir)
	require.NoError(t, err)
	ref := loadFixtureReference(t, src)

	return txs, ref, Merge(txs, ref)
}

func TestMerge_PreservesRowCountAndOrder(t *testing.T) {
	txs, _, records := mergeFixture(t)

	require.Len(t, records, len(txs))
	for i := range txs {
		assert.Equal(t, txs[i], records[i].Transaction)
	}
}

func TestMerge_CategoryJoins(t *testing.T) {
	_, _, records := mergeFixture(t)

	byID := make(map[string]models.EnrichedRecord)
	for _, rec := range records {
		byID[rec.TransactionID] = rec
	}

	require.NotNil(t, byID["T1"].Category)
	assert.Equal(t, "Clothing", *byID["T1"].Category, "first occurrence wins")
	require.NotNil(t, byID["T1"].Subcategory)
	assert.Equal(t, "Women", *byID["T1"].Subcategory)

	assert.Equal(t, "Mens", *byID["T2"].Subcategory)
	assert.Equal(t, "Footwear", *byID["T4"].Category)

	assert.Nil(t, byID["T3"].Category, "unknown category code")
	assert.Nil(t, byID["T3"].Subcategory, "unknown subcategory code")
}

func TestMerge_CustomerJoin(t *testing.T) {
	_, _, records := mergeFixture(t)

	t1 := records[0]
	require.NotNil(t, t1.Customer)
	require.NotNil(t, t1.Customer.CountryName)
	assert.Equal(t, "Poland", *t1.Customer.CountryName)

	t2 := records[1]
	require.NotNil(t, t2.Customer)
	assert.Nil(t, t2.Customer.CountryName, "country code without reference row")
	require.NotNil(t, t2.Age)
	assert.Equal(t, 32, *t2.Age)

	t3 := records[2]
	assert.Nil(t, t3.Customer, "unknown customer id")
	assert.Nil(t, t3.Age)

	t4 := records[3]
	require.NotNil(t, t4.Age)
	assert.Equal(t, 30, *t4.Age)

	t5 := records[4]
	require.NotNil(t, t5.Customer)
	assert.Nil(t, t5.Age, "customer without date of birth")
	assert.Equal(t, "Germany", *t5.Customer.CountryName)
}

func TestMerge_DuplicateCustomersDoNotFanOut(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	ref := &ReferenceData{
		Customers: map[string]models.Customer{"C1": {ID: "C1", DOB: &dob}},
	}
	txs := []models.Transaction{
		{TransactionID: "T1", CustomerID: "C1", Date: time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "T1", CustomerID: "C1", Date: time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	records := Merge(txs, ref)
	require.Len(t, records, 2)
	assert.Equal(t, 30, *records[0].Age)
}

func TestMerge_Idempotent(t *testing.T) {
	txs, ref, first := mergeFixture(t)

	second := Merge(txs, ref)
	assert.Equal(t, first, second)
}

func TestMerge_EmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))

	records := Merge([]models.Transaction{{TransactionID: "T1", ProdCatCode: "1"}}, nil)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Category)
	assert.Nil(t, records[0].Customer)
}

func TestSummarize(t *testing.T) {
	_, _, records := mergeFixture(t)

	stats := Summarize(records)
	assert.Equal(t, MergeStats{
		Records:                5,
		UnmatchedCategories:    1,
		UnmatchedSubcategories: 1,
		UnmatchedCustomers:     1,
		UnmatchedCountries:     1,
		MissingAge:             2,
	}, stats)
}
