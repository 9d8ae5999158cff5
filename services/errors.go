package services

import (
	"errors"
	"fmt"

	"certification-api/fields"
)

// ErrNotDraft is returned when the autosave path touches a record that has
// already been submitted. Only admin status transitions may follow.
var ErrNotDraft = errors.New("application is no longer a draft")

// ErrForbidden is returned when an authenticated user addresses a tracking
// id owned by a different account.
var ErrForbidden = errors.New("application belongs to another user")

// PersistenceError wraps record-store I/O failures. The autosave controller
// treats it as retryable; in-memory field data is never dropped because of one.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ValidationFailedError carries field-level failures from a submission
// attempt. Surfaced inline per field, never as a global notice.
type ValidationFailedError struct {
	Errors []fields.FieldError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Errors))
}

// SizeExceededError rejects an upload before any storage call is made.
type SizeExceededError struct {
	Name  string
	Size  int64
	Limit int64
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("file %s is %d bytes, over the %d byte limit", e.Name, e.Size, e.Limit)
}

// UploadError wraps blob-storage failures for one document slot. It never
// affects other slots or navigation.
type UploadError struct {
	Slot string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload slot %s: %v", e.Slot, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
