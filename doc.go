// Package csv2png converts delimited tabular data into rendered images of
// formatted tables.
//
// The pipeline is: load a CSV file into a [Table], normalize every column
// with [Normalize], and hand the result to a [Renderer]. Normalization
// decides a formatting policy per column and rewrites each cell to its
// final display string, so renderers only ever see strings.
//
// # Column Policies
//
// A column is formatted under exactly one policy, chosen before any of its
// cells are rewritten:
//
//   - Columns named in [Config.IdentifierColumns] are treated as opaque
//     identifiers: values render as fixed-width decimal integers with no
//     thousands separator, so session IDs and hashes are never grouped or
//     rounded.
//   - Every other column gets a fractional-digit count equal to the
//     maximum number of significant fractional digits observed across its
//     values. Values then render with a comma thousands separator and
//     exactly that many fractional digits.
//
// "Significant" means trailing zeros are stripped: "1.50" contributes one
// digit, "3.00" contributes none. A column of plain integers renders as
// grouped integers ("1,000").
//
// Cells that are already textual pass through untouched, and null or NaN
// cells render as [Config.NullPlaceholder] regardless of policy.
//
// # Rendering
//
// Two renderers are provided. [PNGRenderer] rasterizes the table to a PNG
// image using the Go fonts; [HTMLRenderer] writes the same table as an
// HTML fragment. [Converter] ties the pieces together for file-to-file
// conversion:
//
//	conv := csv2png.NewConverter(csv2png.DefaultConfig())
//	err := conv.Convert(ctx, "report.csv") // writes report.png
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidNumericFormat] — a cell cannot be formatted under its
//     column's policy (wrapped in a [FormatError] carrying the column and
//     value)
//   - [ErrRender] — a renderer failed to produce output
//   - [ErrNotNormalized] — a renderer was handed a table that still
//     contains raw values
package csv2png
