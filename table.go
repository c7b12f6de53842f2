package csv2png

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Kind discriminates the value held by a [Cell].
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
)

// Cell holds one tabular value: textual, numeric, or null. After
// [Normalize] every cell in a table is KindString.
type Cell struct {
	kind Kind
	str  string
	num  float64
}

// NullCell returns a cell holding no value.
func NullCell() Cell { return Cell{kind: KindNull} }

// StringCell returns a cell holding textual data.
func StringCell(s string) Cell { return Cell{kind: KindString, str: s} }

// NumberCell returns a cell holding a numeric value.
func NumberCell(n float64) Cell { return Cell{kind: KindNumber, num: n} }

// Kind returns the cell's value kind.
func (c Cell) Kind() Kind { return c.kind }

// Text returns the textual value. Only meaningful for KindString.
func (c Cell) Text() string { return c.str }

// Number returns the numeric value. Only meaningful for KindNumber.
func (c Cell) Number() float64 { return c.num }

// Column is one named column of a [Table].
type Column struct {
	Name  string
	Cells []Cell

	// Align is the rendering alignment hint, set by [Normalize].
	Align Alignment
}

// Table is an ordered sequence of named columns with cells aligned by row
// position. Rows have no identity beyond position and no index column is
// ever rendered.
type Table struct {
	Columns []Column

	normalized bool
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Header returns the column names in order.
func (t *Table) Header() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Row returns the display strings of row i. It panics if called before
// [Normalize], when cells are not yet strings.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.Columns))
	for j, col := range t.Columns {
		c := col.Cells[i]
		if c.kind != KindString {
			panic("csv2png: Row called on unnormalized table")
		}
		row[j] = c.str
	}
	return row
}

// Normalized reports whether the table has been processed by [Normalize].
func (t *Table) Normalized() bool { return t.normalized }

// LoadCSV reads comma-separated data into a [Table]. The first record is
// the header row. Fields are double-quoted with doubled-quote escaping for
// embedded quotes; whitespace inside quoted fields is kept literally.
// Fields that parse as numbers become KindNumber cells, empty fields
// become KindNull, everything else KindString.
func LoadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: %w", io.ErrUnexpectedEOF)
	}

	header := records[0]
	t := &Table{Columns: make([]Column, len(header))}
	for i, name := range header {
		t.Columns[i] = Column{
			Name:  name,
			Cells: make([]Cell, 0, len(records)-1),
		}
	}
	for _, record := range records[1:] {
		for i := range t.Columns {
			t.Columns[i].Cells = append(t.Columns[i].Cells, parseCell(record[i]))
		}
	}
	return t, nil
}

// LoadCSVFile opens path and loads it with [LoadCSV]. The file handle is
// closed once parsing completes.
func LoadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func parseCell(field string) Cell {
	if field == "" {
		return NullCell()
	}
	if n, err := strconv.ParseFloat(field, 64); err == nil {
		return NumberCell(n)
	}
	return StringCell(field)
}
