package csv2png

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// Converter drives load → normalize → render → write for input files.
// Files are processed one at a time with no shared state between them.
type Converter struct {
	Config   Config
	Renderer Renderer

	// Suffix is the output file suffix, replacing a trailing ".csv" on
	// the input name (or appended when absent). Default: ".png".
	Suffix string
}

// NewConverter returns a Converter rendering PNG images with default
// options.
func NewConverter(cfg Config) *Converter {
	return &Converter{
		Config:   cfg,
		Renderer: &PNGRenderer{Options: DefaultRenderOptions()},
		Suffix:   ".png",
	}
}

// OutputPath derives the output filename for an input path: a trailing
// ".csv" is replaced by the output suffix, otherwise the suffix is
// appended.
func (c *Converter) OutputPath(path string) string {
	suffix := c.Suffix
	if suffix == "" {
		suffix = ".png"
	}
	return strings.TrimSuffix(path, ".csv") + suffix
}

// Convert processes one input file: load, normalize, render, and write
// the output image next to the input. The image is written to a temporary
// file and renamed into place, so a failed conversion leaves no partial
// output behind.
func (c *Converter) Convert(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t, err := LoadCSVFile(path)
	if err != nil {
		return err
	}
	if err := Normalize(t, c.Config); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out := c.OutputPath(path)
	tmp, err := os.CreateTemp(filepath.Dir(out), filepath.Base(out)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := c.Renderer.Render(tmp, t); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), out)
}

// ConvertAll processes each input file in order. A failure on one file is
// logged and does not prevent attempting the next; the per-file errors
// are combined into the returned error.
func (c *Converter) ConvertAll(ctx context.Context, paths []string) error {
	var errs error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		if err := c.Convert(ctx, path); err != nil {
			slog.Error("conversion failed", "file", path, "error", err)
			errs = multierr.Append(errs, err)
			continue
		}
		slog.Info("converted", "file", path, "output", c.OutputPath(path))
	}
	return errs
}
