package model

import "fmt"

// SheetNotFoundError reports that a named sheet is absent from a workbook.
type SheetNotFoundError struct {
	Sheet string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found in workbook", e.Sheet)
}

// FileReadError reports that an input stream could not be decoded as a
// spreadsheet container.
type FileReadError struct {
	Err error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read workbook: %v", e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
