package export

import (
	"bytes"
	"testing"

	"dreamhouse/internal/domain"
	"dreamhouse/internal/layout"
	"dreamhouse/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, b []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestDesignWorkbook_OneRowPerRoomAndExtra(t *testing.T) {
	text := "2BHK modern house with balcony and parking"
	l := layout.Synthesize(prompt.Interpret(text), "Villa")
	d := &domain.DesignDetail{ID: 7, Name: "Villa", Prompt: text, CreatedAt: "2024-01-02T03:04:05.000000"}

	b, err := DesignWorkbook(d, l)
	require.NoError(t, err)

	f := openWorkbook(t, b)
	assert.Equal(t, []string{RoomsSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(RoomsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1+len(l.Rooms)+len(l.Extras))
	assert.Equal(t, RoomsHeader, rows[0])
	assert.Equal(t, []string{"Room", "Bedroom", "Bed1", "4", "3", "12"}, rows[1])
	assert.Equal(t, []string{"Extra", "Parking", "Parking1", "4", "3", "12"}, rows[len(rows)-1])
}

func TestDesignWorkbook_Summary(t *testing.T) {
	l := layout.Synthesize(domain.Attributes{Bedrooms: 3, Bathrooms: 2, Style: domain.StyleTraditional, Garden: true}, "Farm")
	d := &domain.DesignDetail{Name: "Farm", Prompt: "3 bedroom 2 bath traditional garden", CreatedAt: "2024-01-02T03:04:05.000000"}

	b, err := DesignWorkbook(d, l)
	require.NoError(t, err)
	f := openWorkbook(t, b)

	get := func(cell string) string {
		v, err := f.GetCellValue(SummarySheet, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Farm", get("B1"))
	assert.Equal(t, "traditional", get("B2"))
	assert.Equal(t, "2024-01-02T03:04:05.000000", get("B4"))
	assert.Equal(t, "Bedroom", get("A5"))
	assert.Equal(t, "3", get("B5"))
	assert.Equal(t, "2", get("B6"))
	assert.Equal(t, "1", get("B10"))
	assert.Equal(t, "Total Area", get("A12"))
	// 3*12 + 2*4 + 9 + 16 + 12
	assert.Equal(t, "81", get("B12"))
}

func TestDesignWorkbook_EmptyLayout(t *testing.T) {
	b, err := DesignWorkbook(&domain.DesignDetail{Name: "Empty"}, domain.Layout{})
	require.NoError(t, err)

	rows, err := openWorkbook(t, b).GetRows(RoomsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
