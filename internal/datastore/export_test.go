package datastore

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteCSV(t *testing.T) {
	_, _, records := mergeFixture(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)

	assert.Equal(t, Columns, rows[0])

	t1 := rows[1]
	assert.Equal(t, "T1", t1[0])
	assert.Equal(t, "2014-02-28", t1[2])
	assert.Equal(t, "552.5", t1[8])
	assert.Equal(t, "e-Shop", t1[9])
	assert.Equal(t, "Clothing", t1[10])
	assert.Equal(t, "Women", t1[11])
	assert.Equal(t, "1990-06-15", t1[12])
	assert.Equal(t, "Poland", t1[16])
	assert.Equal(t, "24", t1[17])

	t3 := rows[3]
	assert.Equal(t, "T3", t3[0])
	for _, i := range []int{10, 11, 12, 13, 14, 15, 16, 17} {
		assert.Empty(t, t3[i], "column %s should be empty", Columns[i])
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteXLSX(t *testing.T) {
	_, _, records := mergeFixture(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "T1", rows[1][0])
	assert.Equal(t, "Clothing", rows[1][10])
}
