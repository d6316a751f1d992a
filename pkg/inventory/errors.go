package inventory

import "fmt"

// NotFoundError indicates the inventory file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("inventory file %s not found", e.Path)
}

// FormatError indicates the inventory file exists but is not valid
// inventory JSON: malformed syntax, a missing envelope key, or a bad
// instance record.
type FormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid inventory in %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid inventory in %s: %s", e.Path, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// WriteError indicates the output file could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write inventory to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
