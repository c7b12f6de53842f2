package csv2png

import (
	"fmt"
	"html"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RenderOptions configures table-to-PNG rasterization.
type RenderOptions struct {
	// FontSize is the text size in points. Default: 13.
	FontSize float64
	// Padding is the pixel padding inside each cell. Default: 8.
	Padding int
	// MinColWidth is the minimum column text width in pixels. Default: 24.
	MinColWidth int
	// MaxCellWidth truncates cells longer than this many display columns
	// with "...". Zero means no truncation.
	MaxCellWidth int
	// Background, HeaderBackground, Grid, and Text override the default
	// colors. Nil entries keep the defaults.
	Background       color.Color
	HeaderBackground color.Color
	Grid             color.Color
	Text             color.Color
}

// DefaultRenderOptions returns the default rasterization options.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		FontSize:    13,
		Padding:     8,
		MinColWidth: 24,
	}
}

func (o *RenderOptions) fill() {
	if o.FontSize <= 0 {
		o.FontSize = 13
	}
	if o.Padding <= 0 {
		o.Padding = 8
	}
	if o.MinColWidth <= 0 {
		o.MinColWidth = 24
	}
	if o.Background == nil {
		o.Background = color.White
	}
	if o.HeaderBackground == nil {
		o.HeaderBackground = color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}
	}
	if o.Grid == nil {
		o.Grid = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	}
	if o.Text == nil {
		o.Text = color.Black
	}
}

// PNGRenderer rasterizes a normalized table to a PNG image: a shaded
// header row of column names, one row per data row, a one-pixel grid, and
// right-aligned numeric columns.
type PNGRenderer struct {
	Options RenderOptions
}

// Render implements [Renderer].
func (r *PNGRenderer) Render(w io.Writer, t *Table) error {
	if !t.Normalized() {
		return ErrNotNormalized
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("%w: table has no columns", ErrRender)
	}

	opts := r.Options
	opts.fill()

	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("%w: parse font: %v", ErrRender, err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("%w: build font face: %v", ErrRender, err)
	}
	defer face.Close()

	// Cell text is display-ready apart from HTML entities such as the
	// "&empty;" null placeholder, which must become glyphs here.
	nRows := t.NumRows()
	cells := make([][]string, nRows+1)
	cells[0] = t.Header()
	for i := 0; i < nRows; i++ {
		row := t.Row(i)
		for j, s := range row {
			s = html.UnescapeString(s)
			if opts.MaxCellWidth > 0 {
				s = runewidth.Truncate(s, opts.MaxCellWidth, "...")
			}
			row[j] = s
		}
		cells[i+1] = row
	}

	colWidths := make([]int, len(t.Columns))
	for j := range t.Columns {
		width := opts.MinColWidth
		for _, row := range cells {
			if tw := font.MeasureString(face, row[j]).Ceil(); tw > width {
				width = tw
			}
		}
		colWidths[j] = width
	}

	metrics := face.Metrics()
	rowHeight := metrics.Height.Ceil() + opts.Padding
	imgWidth := 1
	for _, cw := range colWidths {
		imgWidth += cw + 2*opts.Padding + 1
	}
	imgHeight := (nRows+1)*(rowHeight+1) + 1

	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, imgWidth, rowHeight+1), image.NewUniform(opts.HeaderBackground), image.Point{}, draw.Src)

	grid := image.NewUniform(opts.Grid)
	for i := 0; i <= nRows+1; i++ {
		y := i * (rowHeight + 1)
		draw.Draw(img, image.Rect(0, y, imgWidth, y+1), grid, image.Point{}, draw.Src)
	}
	x := 0
	for j := 0; j <= len(colWidths); j++ {
		draw.Draw(img, image.Rect(x, 0, x+1, imgHeight), grid, image.Point{}, draw.Src)
		if j < len(colWidths) {
			x += colWidths[j] + 2*opts.Padding + 1
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.Text),
		Face: face,
	}
	ascent := metrics.Ascent.Ceil()
	for i, row := range cells {
		baseline := i*(rowHeight+1) + opts.Padding/2 + ascent
		cellX := 1
		for j, s := range row {
			textX := cellX + opts.Padding
			if i > 0 && t.Columns[j].Align == AlignRight {
				textX = cellX + opts.Padding + colWidths[j] - font.MeasureString(face, s).Ceil()
			}
			d.Dot = fixed.P(textX, baseline)
			d.DrawString(s)
			cellX += colWidths[j] + 2*opts.Padding + 1
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: encode png: %v", ErrRender, err)
	}
	return nil
}
