package datastore

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	colTranDate       = "tran_date"
	colTransactionID  = "transaction_id"
	colCustID         = "cust_id"
	colProdCatCode    = "prod_cat_code"
	colProdSubcatCode = "prod_subcat_code"
	colStoreType      = "Store_type"
	colTotalAmt       = "total_amt"
	colQty            = "Qty"
	colRate           = "Rate"
	colTax            = "Tax"

	colCustomerID  = "customer_Id"
	colDOB         = "DOB"
	colGender      = "Gender"
	colCityCode    = "city_code"
	colCountryCode = "country_code"
	colCountry     = "country"
	colCountryName = "country_name"

	colProdCat        = "prod_cat"
	colProdSubCatCode = "prod_sub_cat_code"
	colProdSubcat     = "prod_subcat"
)

const utf8BOM = "\ufeff"

type table struct {
	file    string
	header  []string
	columns map[string]int
	rows    [][]string
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReader(f))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	t := &table{
		file:    filepath.Base(path),
		columns: make(map[string]int),
	}

	header, err := reader.Read()
	if err == io.EOF {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}

	t.header = header
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		if _, dup := t.columns[name]; !dup {
			t.columns[name] = i
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	t.rows = rows

	return t, nil
}

func (t *table) require(columns ...string) error {
	for _, col := range columns {
		if _, ok := t.columns[col]; !ok {
			return &MissingKeyColumnError{File: t.file, Column: col}
		}
	}
	return nil
}

// column returns -1 for an absent column; cell treats -1 as empty.
func (t *table) column(name string) int {
	if i, ok := t.columns[name]; ok {
		return i
	}
	return -1
}

// hasIndexColumn reports whether the first column is an unnamed row index,
// as written by dataframe exports.
func (t *table) hasIndexColumn() bool {
	return len(t.header) > 0 && strings.TrimSpace(strings.TrimPrefix(t.header[0], utf8BOM)) == ""
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *table) float(row []string, rowNum, col int, name string) (float64, error) {
	raw := cell(row, col)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldParseError{File: t.file, Row: rowNum, Column: name, Value: raw, Err: err}
	}
	return v, nil
}

// integer accepts integral floats such as "3.0".
func (t *table) integer(row []string, rowNum, col int, name string) (int, error) {
	raw := cell(row, col)
	if raw == "" {
		return 0, nil
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err == nil && f == float64(int(f)) {
		return int(f), nil
	}
	if err == nil {
		err = errors.New("not an integer")
	}
	return 0, &FieldParseError{File: t.file, Row: rowNum, Column: name, Value: raw, Err: err}
}
