package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var (
	headers = []string{"ID", "Address", "Rent"}
	rows    = [][]string{
		{"1", "12 Hill Road", "1000.00"},
		{"2", "3 Lake View, Apt 4", "1500.00"},
	}
)

func TestCSV(t *testing.T) {
	data, err := CSV(headers, rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, headers, records[0])
	assert.Equal(t, rows[0], records[1])
	// Commas in values survive the round trip.
	assert.Equal(t, "3 Lake View, Apt 4", records[2][1])
}

func TestSpreadsheet(t *testing.T) {
	data, err := Spreadsheet("Properties", headers, rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Properties"}, f.GetSheetList())

	got, err := f.GetCellValue("Properties", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Address", got)

	got, err = f.GetCellValue("Properties", "B3")
	require.NoError(t, err)
	assert.Equal(t, "3 Lake View, Apt 4", got)
}
