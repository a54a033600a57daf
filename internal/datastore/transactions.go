package datastore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"sales-dashboard/internal/models"
)

const maxParallelFiles = 8

var transactionColumns = []string{
	colTranDate,
	colCustID,
	colProdCatCode,
	colProdSubcatCode,
	colStoreType,
	colTotalAmt,
}

// LoadTransactions reads every batch file in dir and concatenates them in
// directory-listing order, keeping each file's row order. Files are parsed
// in parallel but the result is identical to a sequential load.
func LoadTransactions(ctx context.Context, dir string) ([]models.Transaction, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
		}
		return nil, fmt.Errorf("read transactions dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files     = append(files, filepath.Join(dir, entry.Name()))
	}

	batches := make([][]models.Transaction, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFiles)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			batch, err := loadTransactionFile(path)
			if err != nil {
				return err
			}
			batches[i] = batch
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, batch := range batches {
		total += len(batch)
	}

	transactions := make([]models.Transaction, 0, total)
	for _, batch := range batches {
		transactions = append(transactions, batch...)
	}

	return transactions, nil
}

func loadTransactionFile(path string) ([]models.Transaction, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require(transactionColumns...); err != nil {
		return nil, err
	}

	var (
		idCol     = t.column(colTransactionID)
		dateCol   = t.column(colTranDate)
		custCol   = t.column(colCustID)
		catCol    = t.column(colProdCatCode)
		subcatCol = t.column(colProdSubcatCode)
		storeCol  = t.column(colStoreType)
		totalCol  = t.column(colTotalAmt)
		qtyCol    = t.column(colQty)
		rateCol   = t.column(colRate)
		taxCol    = t.column(colTax)
		indexed   = t.hasIndexColumn()
		batch     = make([]models.Transaction, 0, len(t.rows))
	)

	for i, row := range t.rows {
		rowNum := i + 1

		rawDate := cell(row, dateCol)
		date, err := ParseTransactionDate(rawDate)
		if err != nil {
			return nil, &DateParseError{File: t.file, Row: rowNum, Value: rawDate}
		}

		total, err := t.float(row, rowNum, totalCol, colTotalAmt)
		if err != nil {
			return nil, err
		}
		qty, err := t.integer(row, rowNum, qtyCol, colQty)
		if err != nil {
			return nil, err
		}
		rate, err := t.float(row, rowNum, rateCol, colRate)
		if err != nil {
			return nil, err
		}
		tax, err := t.float(row, rowNum, taxCol, colTax)
		if err != nil {
			return nil, err
		}

		rowIndex := strconv.Itoa(i)
		if indexed {
			rowIndex = cell(row, 0)
		}

		batch     = append(batch, models.Transaction{
			SourceFile:     t.file,
			RowIndex:       rowIndex,
			TransactionID:  cell(row, idCol),
			Date:           date,
			CustomerID:     cell(row, custCol),
			ProdCatCode:    cell(row, catCol),
			ProdSubcatCode: cell(row, subcatCol),
			StoreType:      models.StoreType(cell(row, storeCol)),
			Quantity:       qty,
			Rate:           rate,
			Tax:            tax,
			TotalAmount:    total,
		})
	}

	return batch, nil
}
