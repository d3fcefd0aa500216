package recorder

import "fmt"

// MalformedEventError is returned when the first notification record is
// missing or lacks a bucket name or object key. Nothing is written.
type MalformedEventError struct {
	Reason string
}

func (e *MalformedEventError) Error() string {
	return "malformed upload event: " + e.Reason
}

// StoreUnavailableError is returned when the store rejects or cannot complete the write.
type StoreUnavailableError struct {
	FileID string
	Err    error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("storing metadata for %s: %s", e.FileID, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
