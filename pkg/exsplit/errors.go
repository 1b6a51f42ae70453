package exsplit

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input path is not an existing regular file.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidArgument indicates a caller passed an out-of-domain value.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports which argument was rejected and with what value.
type ArgumentError struct {
	Name  string
	Value interface{}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s = %v must be greater than 0", ErrInvalidArgument, e.Name, e.Value)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// SheetError represents a failure while operating on a destination sheet.
type SheetError struct {
	SheetName string
	Op        string // "create", "write"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s sheet %q: %v", e.Op, e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, op string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Op:        op,
		Err:       err,
	}
}
