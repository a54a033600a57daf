package datastore

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"sales-dashboard/internal/models"
)

type Sources struct {
	TransactionsDir  string
	CountryCodesFile string
	CustomersFile    string
	ProductInfoFile  string
}

// DefaultSources lays the inputs out under dir the way the db directory
// ships them.
func DefaultSources(dir string) Sources {
	return Sources{
		TransactionsDir:  filepath.Join(dir, "transactions"),
		CountryCodesFile: filepath.Join(dir, "country_codes.csv"),
		CustomersFile:    filepath.Join(dir, "customers.csv"),
		ProductInfoFile:  filepath.Join(dir, "prod_cat_info.csv"),
	}
}

// Dataset owns everything loaded at startup. It is built once by Load and
// never mutated afterwards.
type Dataset struct {
	Sources      Sources
	Transactions []models.Transaction
	Reference    *ReferenceData
	Records      []models.EnrichedRecord
	Stats        MergeStats
	LoadedAt     time.Time
}

func Load(ctx context.Context, src Sources, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		transactions []models.Transaction
		ref          *ReferenceData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = LoadTransactions(gctx, src.TransactionsDir)
		if err != nil {
			return fmt.Errorf("load transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		ref, err = LoadReferenceData(gctx, src.CountryCodesFile, src.CustomersFile, src.ProductInfoFile)
		if err != nil {
			return fmt.Errorf("load reference data: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if ref.ShadowedCategories > 0 || ref.ShadowedSubcategories > 0 {
		logger.Warn("product info has repeated codes, keeping first occurrence",
			"shadowed_categories", ref.ShadowedCategories,
			"shadowed_subcategories", ref.ShadowedSubcategories,
		)
	}
	if ref.DuplicateCustomers > 0 || ref.DuplicateCountries > 0 {
		logger.Warn("reference data has repeated keys, keeping first occurrence",
			"duplicate_customers", ref.DuplicateCustomers,
			"duplicate_countries", ref.DuplicateCountries,
		)
	}

	records := Merge(transactions, ref)
	stats := Summarize(records)

	logger.Info("dataset merged",
		"transactions", len(transactions),
		"customers", len(ref.Customers),
		"countries", len(ref.Countries),
		"unmatched_categories", stats.UnmatchedCategories,
		"unmatched_customers", stats.UnmatchedCustomers,
	)

	return &Dataset{
		Sources:      src,
		Transactions: transactions,
		Reference:    ref,
		Records:      records,
		Stats:        stats,
		LoadedAt:     time.Now(),
	}, nil
}
