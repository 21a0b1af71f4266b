package model

import "fmt"

// ValidationError means a required field was empty after trimming. The
// submission is refused before any remote call is made.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// RepositoryWriteError wraps a failed document create/update/delete.
type RepositoryWriteError struct {
	Op  string
	Err error
}

func (e *RepositoryWriteError) Error() string {
	return fmt.Sprintf("message %s failed: %v", e.Op, e.Err)
}

func (e *RepositoryWriteError) Unwrap() error { return e.Err }

// StorageWriteError wraps a failed attachment upload. Documents already
// written stay as they are; there is no compensating transaction.
type StorageWriteError struct {
	Key string
	Err error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("upload of %s failed: %v", e.Key, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// StorageDeleteError wraps a failed attachment delete. It is only ever
// logged; attachment deletion is best-effort and never blocks the enclosing
// document operation.
type StorageDeleteError struct {
	Path string
	Err  error
}

func (e *StorageDeleteError) Error() string {
	return fmt.Sprintf("delete of %s failed: %v", e.Path, e.Err)
}

func (e *StorageDeleteError) Unwrap() error { return e.Err }
