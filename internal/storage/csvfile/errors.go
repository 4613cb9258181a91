package csvfile

import (
	"fmt"
)

// StorageError indicates reference data could not be read at startup.
// Nothing can proceed without reference data, so it is fatal to the process.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("Unable to read file by path: %s", e.Path)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Label reports the error category used in the error report output.
func (e *StorageError) Label() string { return "INTERNAL SERVER ERROR" }

// FieldError indicates a malformed field in a reference data row.
type FieldError struct {
	Path   string
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("Field %s %s", e.Field, e.Reason)
}

// Label reports the error category used in the error report output.
func (e *FieldError) Label() string { return "BAD REQUEST" }
