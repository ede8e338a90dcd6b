package importers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDecode matches every *DecodeError.
	ErrDecode = errors.New("unreadable spreadsheet")
	// ErrEmptySheet is returned when a decoded sheet carries no data rows.
	ErrEmptySheet = errors.New("file is empty or malformed")
	// ErrNotPreviewing is returned by Confirm when no file has been selected.
	ErrNotPreviewing = errors.New("no import in progress")
	// ErrConfirmBlocked is returned by Confirm while the preview has errors.
	ErrConfirmBlocked = errors.New("import has blocking errors")
)

// DecodeError reports a file that could not be read as a workbook.
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("unable to read file: %v", e.Err)
	}
	return fmt.Sprintf("unable to read %s file: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// SchemaError lists every required column missing from the header row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "Missing columns: " + strings.Join(e.Missing, ", ")
}

// ImportError wraps any failure raised while confirming an import.
// The caller's collection is untouched when it is returned.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return "import failed: " + e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
