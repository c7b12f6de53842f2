package csv2png

import (
	"fmt"
	"html"
	"io"
)

// HTMLRenderer writes a normalized table as an HTML table fragment: a
// <thead> of column names and a <tbody> of data rows, with no index
// column. Cell text is escaped, except cells equal to RawPlaceholder,
// which pass through verbatim so an entity placeholder like "&empty;"
// survives escaping.
type HTMLRenderer struct {
	// RawPlaceholder is the cell string written without escaping.
	// Typically [Config.NullPlaceholder]. Empty disables the exemption.
	RawPlaceholder string
}

// Render implements [Renderer].
func (r *HTMLRenderer) Render(w io.Writer, t *Table) error {
	if !t.Normalized() {
		return ErrNotNormalized
	}

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for _, col := range t.Columns {
		style := alignStyle(col.Align)
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", style, html.EscapeString(col.Name)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for i := 0; i < t.NumRows(); i++ {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for j, cell := range t.Row(i) {
			style := alignStyle(t.Columns[j].Align)
			text := html.EscapeString(cell)
			if r.RawPlaceholder != "" && cell == r.RawPlaceholder {
				text = cell
			}
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", style, text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func alignStyle(a Alignment) string {
	if a == AlignRight {
		return ` style="text-align: right"`
	}
	return ""
}
