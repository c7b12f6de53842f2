package csv2png

import (
	"math"
	"strconv"
	"strings"
)

// Config controls normalization. The zero value is not useful; start from
// [DefaultConfig].
type Config struct {
	// IdentifierColumns names columns whose values are opaque tokens
	// (session IDs, hashes). They are formatted as fixed-width integers
	// with no thousands separator, independent of their actual values.
	// Matching is exact.
	IdentifierColumns []string

	// IdentifierWidth is the minimum field width used for identifier
	// columns.
	IdentifierWidth int

	// NullPlaceholder is the display string for null and NaN cells,
	// applied uniformly across all columns.
	NullPlaceholder string
}

// DefaultConfig matches the historical behavior: SESSION_ID columns are
// identifiers padded to 18 characters, nulls render as the HTML empty-set
// entity.
func DefaultConfig() Config {
	return Config{
		IdentifierColumns: []string{"SESSION_ID"},
		IdentifierWidth:   18,
		NullPlaceholder:   "&empty;",
	}
}

// IsIdentifierColumn reports whether name is configured as an identifier
// column.
func (c Config) IsIdentifierColumn(name string) bool {
	for _, id := range c.IdentifierColumns {
		if name == id {
			return true
		}
	}
	return false
}

// columnDigits decides the formatting policy for a column: a negative
// count selects identifier-style fixed-width padding, zero or positive
// selects thousands-separated numeric formatting with that many
// fractional digits. The whole column is scanned before any cell is
// rewritten.
func (c Config) columnDigits(col Column) int {
	if c.IsIdentifierColumn(col.Name) {
		return -c.IdentifierWidth
	}
	digits := 0
	for _, cell := range col.Cells {
		if d := countFractionDigits(canonical(cell)); d > digits {
			digits = d
		}
	}
	return digits
}

// canonical returns the cell value's canonical string form, the form the
// fractional-digit count is taken from. Numbers use the shortest
// round-trip representation so floating-point artifacts are captured
// exactly as they would print. Ordinary magnitudes stay in fixed
// notation: exponent form would make a plain integer like 1234567 look
// like it had fractional digits. Only very large or very small values
// print with an exponent, the same threshold at which they would appear
// in exponent form in source data.
func canonical(c Cell) string {
	switch c.kind {
	case KindString:
		return c.str
	case KindNumber:
		if math.IsNaN(c.num) {
			return "nan"
		}
		abs := math.Abs(c.num)
		if c.num == 0 || (abs >= 1e-4 && abs < 1e16) {
			return strconv.FormatFloat(c.num, 'f', -1, 64)
		}
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	default:
		return "nan"
	}
}

// countFractionDigits returns the number of significant fractional digits
// in a numeric string: the length of the substring after the decimal
// point with trailing zeros stripped. Integers, strings without a point,
// and "nan" count as zero.
func countFractionDigits(s string) int {
	if s == "nan" {
		return 0
	}
	if _, frac, ok := strings.Cut(s, "."); ok {
		return len(strings.TrimRight(frac, "0"))
	}
	return 0
}
