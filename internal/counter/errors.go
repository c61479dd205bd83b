package counter

import "fmt"

// OpenError is returned when a path cannot be opened or read.
// It is the only error kind a count can fail with: any byte sequence is
// tokenizable.
type OpenError struct {
	// Path is the file that could not be read.
	Path string

	// Err is the underlying error from the file system.
	Err error
}

// Error returns the message recorded in the work queue's error log.
func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error so callers can use errors.Is with
// os.ErrNotExist and friends.
func (e *OpenError) Unwrap() error {
	return e.Err
}
