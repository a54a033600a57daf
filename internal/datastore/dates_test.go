package datastore

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionDate(t *testing.T) {
	want := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "dashed", raw: "01-02-2023"},
		{name: "slashed", raw: "01/02/2023"},
		{name: "single digits", raw: "1-2-2023"},
		{name: "surrounding space", raw: " 01/02/2023 "},
		{name: "iso is unsupported", raw: "2023-02-01", wantErr: true},
		{name: "dotted is unsupported", raw: "01.02.2023", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransactionDate(tt.raw)
			if tt.wantErr {
				var dateErr *DateParseError
				require.True(t, errors.As(err, &dateErr), "want DateParseError, got %v", err)
				assert.Equal(t, tt.raw, dateErr.Value)
				return
			}
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParseBirthDate(t *testing.T) {
	dob, err := ParseBirthDate("1990-06-15")
	require.NoError(t, err)
	require.NotNil(t, dob)
	assert.Equal(t, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), *dob)

	dob, err = ParseBirthDate("26-09-1981")
	require.NoError(t, err)
	assert.Equal(t, time.September, dob.Month())

	dob, err = ParseBirthDate("  ")
	require.NoError(t, err)
	assert.Nil(t, dob)

	_, err = ParseBirthDate("yesterday")
	var dateErr *DateParseError
	assert.ErrorAs(t, err, &dateErr)
}

func TestAgeAt(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		at   time.Time
		want int
	}{
		{time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2020, 6, 14, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC), 29},
		{dob, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeAt(dob, tt.at), "at %s", tt.at.Format(time.DateOnly))
	}
}
