package csv2png

import "log/slog"

// Normalize rewrites every cell of t to its final display string, column
// by column. The policy for a column is computed from the column's
// original values before any of its cells are mutated; a single-pass
// cell-by-cell rewrite would corrupt the inference for later rows.
//
// Each column's inferred digit count is logged as it is computed. On
// success every cell is KindString and t.Normalized() reports true.
// Normalize is idempotent: string cells pass through unchanged.
func Normalize(t *Table, cfg Config) error {
	for i := range t.Columns {
		col := &t.Columns[i]
		digits := cfg.columnDigits(*col)
		slog.Info("column policy", "column", col.Name, "digits", digits)

		numeric := false
		for _, c := range col.Cells {
			if c.Kind() == KindNumber {
				numeric = true
				break
			}
		}

		for j, c := range col.Cells {
			s, err := formatCell(c, digits, cfg.NullPlaceholder)
			if err != nil {
				return &FormatError{Column: col.Name, Value: c.Number(), Err: err}
			}
			col.Cells[j] = StringCell(s)
		}

		// Numeric columns read better right-aligned; identifier and
		// text columns stay left. Re-normalizing an already-stringified
		// table keeps the hints from the first pass.
		if !t.normalized {
			if digits >= 0 && numeric {
				col.Align = AlignRight
			} else {
				col.Align = AlignLeft
			}
		}
	}
	t.normalized = true
	return nil
}
