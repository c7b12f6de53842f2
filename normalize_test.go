package csv2png_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/csv2png"
)

func loadTable(t *testing.T, in string) *csv2png.Table {
	t.Helper()
	tbl, err := csv2png.LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	return tbl
}

func TestNormalizeScenario(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "NAME,AMOUNT,SESSION_ID\nAlice,1234.5,987654321\n")

	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))

	assert.True(t, tbl.Normalized())
	assert.Equal(t, []string{"Alice", "1,234.5", "         987654321"}, tbl.Row(0))
}

func TestNormalizeFractionDigitInference(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "VAL\n1.50\n2.3\n4\n")

	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))

	// Max significant fraction digits is 1 ("1.50" counts as one digit),
	// so every value gets exactly one fractional digit.
	assert.Equal(t, []string{"1.5"}, tbl.Row(0))
	assert.Equal(t, []string{"2.3"}, tbl.Row(1))
	assert.Equal(t, []string{"4.0"}, tbl.Row(2))
}

func TestNormalizeLargeValues(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "AMOUNT,PRICE\n1234567,1234567.5\n")

	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))

	// Values in the millions are still plain integers or one-digit
	// decimals; the inferred digit count must not pick up an exponent
	// tail from their string form.
	assert.Equal(t, []string{"1,234,567", "1,234,567.5"}, tbl.Row(0))
}

func TestNormalizeZeroDigitGrouping(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "N\n1000\n2000.0\n")

	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))

	assert.Equal(t, []string{"1,000"}, tbl.Row(0))
	assert.Equal(t, []string{"2,000"}, tbl.Row(1))
}

func TestNormalizeIdentifierOverride(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "SESSION_ID\n123\n4567\n")

	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))

	for i := 0; i < tbl.NumRows(); i++ {
		got := tbl.Row(i)[0]
		assert.Len(t, got, 18)
		assert.NotContains(t, got, ",")
	}
	assert.Equal(t, "               123", tbl.Row(0)[0])
}

func TestNormalizeNullPlaceholder(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "A,SESSION_ID\n,\n1.5,42\n")

	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))

	// Null renders as the placeholder in every column, identifier or not.
	assert.Equal(t, []string{"&empty;", "&empty;"}, tbl.Row(0))
}

func TestNormalizeStringPassthrough(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "MIXED\nabc\n1.25\n")

	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))

	// The column infers two digits from 1.25 but the textual cell is
	// never reformatted.
	assert.Equal(t, []string{"abc"}, tbl.Row(0))
	assert.Equal(t, []string{"1.25"}, tbl.Row(1))
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "NAME,AMOUNT,SESSION_ID\nAlice,1234.5,987654321\n,100,2\n")
	cfg := csv2png.DefaultConfig()

	require.NoError(t, csv2png.Normalize(tbl, cfg))
	first := [][]string{tbl.Row(0), tbl.Row(1)}
	aligns := []csv2png.Alignment{tbl.Columns[0].Align, tbl.Columns[1].Align, tbl.Columns[2].Align}

	require.NoError(t, csv2png.Normalize(tbl, cfg))
	assert.Equal(t, first, [][]string{tbl.Row(0), tbl.Row(1)})
	assert.Equal(t, aligns, []csv2png.Alignment{tbl.Columns[0].Align, tbl.Columns[1].Align, tbl.Columns[2].Align})
}

func TestNormalizeAlignmentHints(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "NAME,AMOUNT,SESSION_ID\nAlice,1234.5,987654321\n")

	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))

	assert.Equal(t, csv2png.AlignLeft, tbl.Columns[0].Align)
	assert.Equal(t, csv2png.AlignRight, tbl.Columns[1].Align)
	assert.Equal(t, csv2png.AlignLeft, tbl.Columns[2].Align)
}

func TestNormalizeAllNullColumn(t *testing.T) {
	t.Parallel()
	// A second column keeps the rows non-blank: a line of nothing but
	// empty fields would be skipped by the CSV reader entirely.
	tbl := loadTable(t, "E,X\n,1\n,2\n")

	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))
	require.Equal(t, 2, tbl.NumRows())

	// The all-null column infers zero digits and every cell renders as
	// the placeholder.
	assert.Equal(t, []string{"&empty;", "1"}, tbl.Row(0))
	assert.Equal(t, []string{"&empty;", "2"}, tbl.Row(1))
}

func TestNormalizeCustomConfig(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "HASH,X\n12345,\n")
	cfg := csv2png.Config{
		IdentifierColumns: []string{"HASH"},
		IdentifierWidth:   8,
		NullPlaceholder:   "n/a",
	}

	require.NoError(t, csv2png.Normalize(tbl, cfg))

	assert.Equal(t, []string{"   12345", "n/a"}, tbl.Row(0))
}

func TestNormalizeFormatErrorCarriesColumn(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "SESSION_ID\n1.5\n")

	err := csv2png.Normalize(tbl, csv2png.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, csv2png.ErrInvalidNumericFormat)

	var fe *csv2png.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "SESSION_ID", fe.Column)
	assert.Equal(t, 1.5, fe.Value)
}
