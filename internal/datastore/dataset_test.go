package datastore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad(t *testing.T) {
	src := writeFixture(t)

	ds, err := Load(context.Background(), src, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, src, ds.Sources)
	assert.Len(t, ds.Transactions, 5)
	assert.Len(t, ds.Records, 5)
	assert.Equal(t, 5, ds.Stats.Records)
	assert.Equal(t, 1, ds.Stats.UnmatchedCustomers)
	assert.False(t, ds.LoadedAt.IsZero())
	assert.NotNil(t, ds.Reference)
}

func TestLoad_FailsFast(t *testing.T) {
	t.Run("missing transactions dir", func(t *testing.T) {
		src := writeFixture(t)
		require.NoError(t, os.RemoveAll(src.TransactionsDir))

		ds, err := Load(context.Background(), src, quietLogger())
		assert.Nil(t, ds)
		assert.True(t, errors.Is(err, ErrSourceNotFound))
	})

	t.Run("bad date", func(t *testing.T) {
		src := writeFixture(t)
		writeFile(t, src.TransactionsDir+"/c.csv", ",transaction_id,cust_id,tran_date,prod_subcat_code,prod_cat_code,total_amt,Store_type\n0,T6,C1,2014/02/28,1,1,10,MBR\n")

		ds, err := Load(context.Background(), src, quietLogger())
		assert.Nil(t, ds)
		var dateErr *DateParseError
		assert.ErrorAs(t, err, &dateErr)
	})

	t.Run("missing reference file", func(t *testing.T) {
		src := writeFixture(t)
		require.NoError(t, os.Remove(src.ProductInfoFile))

		ds, err := Load(context.Background(), src, nil)
		assert.Nil(t, ds)
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})
}
