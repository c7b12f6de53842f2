package main

import (
	"context"
	"encoding/csv"
	"errors"
	"io/fs"

	"github.com/bjaus/csv2png"
)

const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// exitCode maps a command error to a stable process exit code for
// automation. Unreadable inputs and malformed data are user errors;
// rendering failures are system errors.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, csv2png.ErrInvalidNumericFormat) {
		return ExitUser
	}
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return ExitUser
	}
	return ExitSystem
}
