package csv2png

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidNumericFormat = errors.New("invalid numeric format")
	ErrRender               = errors.New("render failed")
	ErrNotNormalized        = errors.New("table not normalized")
)

// FormatError reports a cell value that could not be formatted under its
// column's policy. It wraps [ErrInvalidNumericFormat].
type FormatError struct {
	Column string
	Value  float64
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("column %q: cannot format %v: %v", e.Column, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// formatCell converts one cell to its final display string. A negative
// digit count selects identifier-style fixed-width padding, zero selects
// grouped integer formatting, positive selects grouped fixed-point with
// that many fractional digits. Cells that are already strings pass
// through verbatim, so re-applying formatCell to its own output is a
// no-op.
func formatCell(c Cell, digits int, nullStr string) (string, error) {
	if c.kind == KindString {
		return c.str, nil
	}
	if c.kind == KindNull || math.IsNaN(c.num) {
		return nullStr, nil
	}
	v := c.num
	switch {
	case digits < 0:
		// Identifier policy: sign-less, verbatim, never grouped. The
		// width is a minimum; wider values are not truncated.
		if math.IsInf(v, 0) || v < 0 || v != math.Trunc(v) || v >= math.MaxInt64 {
			return "", fmt.Errorf("identifier value %v: %w", v, ErrInvalidNumericFormat)
		}
		return fmt.Sprintf("%*d", -digits, int64(v)), nil
	case math.IsInf(v, 0):
		return "", fmt.Errorf("non-finite value %v: %w", v, ErrInvalidNumericFormat)
	case digits == 0:
		return groupThousands(strconv.FormatFloat(v, 'f', 0, 64)), nil
	default:
		return groupThousands(strconv.FormatFloat(v, 'f', digits, 64)), nil
	}
}

// groupThousands inserts a comma between every three integer digits of a
// plain decimal number string. The fractional part and sign are left
// untouched.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		if hasFrac {
			return sign + intPart + "." + frac
		}
		return sign + intPart
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
