package csv2png_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/csv2png"
)

func TestHTMLRenderer(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "NAME,AMOUNT\n\"A & B\",1234.5\n,\n")
	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))

	var buf bytes.Buffer
	r := &csv2png.HTMLRenderer{RawPlaceholder: "&empty;"}
	require.NoError(t, r.Render(&buf, tbl))
	out := buf.String()

	assert.Contains(t, out, "<th>NAME</th>")
	assert.Contains(t, out, `<th style="text-align: right">AMOUNT</th>`)
	assert.Contains(t, out, "<td>A &amp; B</td>")
	assert.Contains(t, out, `<td style="text-align: right">1,234.5</td>`)
	// The placeholder entity must survive escaping.
	assert.Contains(t, out, "<td>&empty;</td>")
	assert.NotContains(t, out, "&amp;empty;")
}

func TestHTMLRendererEscapesPlaceholderWhenUnset(t *testing.T) {
	t.Parallel()
	// A quoted empty field keeps the line non-blank so the row survives
	// CSV parsing as a single null cell.
	tbl := loadTable(t, "A\n\"\"\n")
	require.NoError(t, csv2png.Normalize(tbl, csv2png.DefaultConfig()))
	require.Equal(t, 1, tbl.NumRows())

	var buf bytes.Buffer
	require.NoError(t, (&csv2png.HTMLRenderer{}).Render(&buf, tbl))
	assert.Contains(t, buf.String(), "&amp;empty;")
}

func TestHTMLRendererRejectsRawTable(t *testing.T) {
	t.Parallel()
	tbl := loadTable(t, "A\n1\n")

	err := (&csv2png.HTMLRenderer{}).Render(&bytes.Buffer{}, tbl)
	assert.ErrorIs(t, err, csv2png.ErrNotNormalized)
}
