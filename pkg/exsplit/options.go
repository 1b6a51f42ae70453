// Package exsplit splits the first worksheet of a workbook into fixed-size
// chunks, one new worksheet per chunk.
package exsplit

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	// DefaultChunkSize is the number of source rows placed in each new sheet.
	DefaultChunkSize = 8000
	// DefaultPrefix is prepended to the 1-based index of each new sheet.
	DefaultPrefix = "data_"
)

// forbiddenSheetChars lists characters Excel rejects in sheet names.
const forbiddenSheetChars = `:\/?*[]`

// Options configures splitting behavior.
type Options struct {
	// ChunkSize is the maximum number of rows per destination sheet.
	ChunkSize int
	// Prefix names destination sheets as Prefix + index.
	Prefix string
	// Exact allocates ceil(rows/ChunkSize) sheets. When false, the sheet
	// count is floor(rows/ChunkSize)+1, which leaves an empty trailing sheet
	// when the row count is an exact multiple of ChunkSize.
	Exact bool
	// Logger receives progress messages. The zero value discards them.
	Logger *zerolog.Logger
}

// DefaultOptions returns default splitting options.
func DefaultOptions() Options {
	return Options{
		ChunkSize: DefaultChunkSize,
		Prefix:    DefaultPrefix,
	}
}

// logger returns the configured logger or a disabled one.
func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// SheetCount returns how many destination sheets maxRow rows need.
func (o Options) SheetCount(maxRow int) int {
	if o.Exact {
		n := (maxRow + o.ChunkSize - 1) / o.ChunkSize
		if n < 1 {
			n = 1
		}
		return n
	}
	return maxRow/o.ChunkSize + 1
}

// SheetName returns the destination sheet name for a 1-based index.
func (o Options) SheetName(index int) string {
	return fmt.Sprintf("%s%d", o.Prefix, index)
}

// ValidateOptions checks that opts can produce valid sheet names and chunks.
func ValidateOptions(opts Options) error {
	if opts.ChunkSize < 1 {
		return &ArgumentError{Name: "chunk_size", Value: opts.ChunkSize}
	}
	if opts.Prefix == "" {
		return fmt.Errorf("%w: sheet prefix must not be empty", ErrInvalidArgument)
	}
	if strings.ContainsAny(opts.Prefix, forbiddenSheetChars) {
		return fmt.Errorf("%w: sheet prefix %q contains one of %q",
			ErrInvalidArgument, opts.Prefix, forbiddenSheetChars)
	}
	if strings.HasPrefix(opts.Prefix, "'") {
		return fmt.Errorf("%w: sheet prefix %q must not start with an apostrophe",
			ErrInvalidArgument, opts.Prefix)
	}
	return nil
}

// validateSheetNames rejects names excelize would refuse to create.
func validateSheetNames(names []string) error {
	for _, name := range names {
		if len([]rune(name)) > excelize.MaxSheetNameLength {
			return fmt.Errorf("%w: sheet name %q exceeds %d characters",
				ErrInvalidArgument, name, excelize.MaxSheetNameLength)
		}
	}
	return nil
}
