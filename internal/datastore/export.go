package datastore

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"sales-dashboard/internal/models"
)

const (
	exportDateLayout = "2006-01-02"
	xlsxSheet        = "enriched"
)

// Columns is the header of the exported enriched table. Source column
// names are kept verbatim; Age is derived.
var Columns = []string{
	colTransactionID,
	colCustID,
	colTranDate,
	colProdSubcatCode,
	colProdCatCode,
	colQty,
	colRate,
	colTax,
	colTotalAmt,
	colStoreType,
	colProdCat,
	colProdSubcat,
	colDOB,
	colGender,
	colCityCode,
	colCountryCode,
	colCountry,
	"Age",
}

// exportRow renders rec as cells; absent values become nil.
func exportRow(rec models.EnrichedRecord) []any {
	row := []any{
		rec.TransactionID,
		rec.CustomerID,
		rec.Date.Format(exportDateLayout),
		rec.ProdSubcatCode,
		rec.ProdCatCode,
		rec.Quantity,
		rec.Rate,
		rec.Tax,
		rec.TotalAmount,
		string(rec.StoreType),
		stringOrNil(rec.Category),
		stringOrNil(rec.Subcategory),
		nil, nil, nil, nil, nil,
		nil,
	}

	if c := rec.Customer; c != nil {
		if c.DOB != nil {
			row[12] = c.DOB.Format(exportDateLayout)
		}
		row[13] = c.Gender
		row[14] = c.CityCode
		row[15] = c.CountryCode
		row[16] = stringOrNil(c.CountryName)
	}
	if rec.Age != nil {
		row[17] = *rec.Age
	}

	return row
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func WriteCSV(w io.Writer, records []models.EnrichedRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	line := make([]string, len(Columns))
	for _, rec := range records {
		for i, v := range exportRow(rec) {
			line[i] = formatCell(v)
		}
		if err := writer.Write(line); err != nil {
			return fmt.Errorf("write record %s: %w", rec.TransactionID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func WriteXLSX(w io.Writer, records []models.EnrichedRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(xlsxSheet)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	header := make([]any, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cellName, exportRow(rec)); err != nil {
			return fmt.Errorf("write record %s: %w", rec.TransactionID, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}

	return f.Write(w)
}
