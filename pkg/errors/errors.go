// Package errors provides standardized error handling for fmjob.
// It holds the sentinel errors of the job framework, the typed wrappers
// used by runners and infrastructure, and helpers to inspect them.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Job contract violations
	ErrAlreadyStarted = errors.New("job has already been started")
	ErrNotRunning     = errors.New("job is not running")
	ErrJobRunning     = errors.New("job is still running")
	ErrReleased       = errors.New("job has been released")
	ErrNoOwner        = errors.New("job has no owner loop")
	ErrInvalidAnswer  = errors.New("answer index out of range")
	ErrUnknownEvent   = errors.New("unknown event kind")

	// Owner / executor availability
	ErrOwnerClosed = errors.New("owner loop is closed")
	ErrLoopClosed  = errors.New("event loop is closed")
	ErrPoolStopped = errors.New("worker pool is stopped")

	// Operation outcomes reported by runners
	ErrCancelled = errors.New("operation cancelled")
	ErrTimeout   = errors.New("operation timed out")

	// Filesystem related errors
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrFilesystemFailed = errors.New("filesystem operation failed")

	// Configuration and settings
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrUnknownSetting = errors.New("unknown setting")
	ErrSettingType    = errors.New("setting value has the wrong type")
)

// ProtocolError is a programming-contract failure on a specific call.
// The job state is left untouched when one is returned.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// JobError represents an error related to a specific job
type JobError struct {
	JobID     string
	Operation string
	Err       error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %s: operation %s: %v", e.JobID, e.Operation, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// FilesystemError represents an error related to filesystem operations
type FilesystemError struct {
	Path      string
	Operation string
	Err       error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem %s: operation %s: %v", e.Path, e.Operation, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error related to configuration
type ConfigError struct {
	Component string
	Field     string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s.%s: %v", e.Component, e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Component, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SettingsError represents a failed settings store access
type SettingsError struct {
	Key string
	Err error
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("setting %q: %v", e.Key, e.Err)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// Error wrapping constructors
func NewProtocolError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ProtocolError{Op: op, Err: err}
}

func WrapJobError(jobID, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &JobError{JobID: jobID, Operation: operation, Err: err}
}

func WrapFilesystemError(path, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &FilesystemError{Path: path, Operation: operation, Err: err}
}

func WrapConfigError(component, field string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Component: component, Field: field, Err: err}
}

func WrapSettingsError(key string, err error) error {
	if err == nil {
		return nil
	}
	return &SettingsError{Key: key, Err: err}
}

// Error classification functions
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}

func IsJobError(err error) bool {
	var je *JobError
	return errors.As(err, &je)
}

func IsFilesystemError(err error) bool {
	var fe *FilesystemError
	return errors.As(err, &fe)
}

func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func IsSettingsError(err error) bool {
	var se *SettingsError
	return errors.As(err, &se)
}

func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrOwnerClosed) ||
		errors.Is(err, ErrLoopClosed) ||
		errors.Is(err, ErrPoolStopped)
}

func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded)
}

// Context-aware error handling
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsCancellation reports whether err only says that work was stopped on request.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}

// Error extraction helpers
func GetJobID(err error) (string, bool) {
	var je *JobError
	if errors.As(err, &je) {
		return je.JobID, true
	}
	return "", false
}

func GetPath(err error) (string, bool) {
	var fe *FilesystemError
	if errors.As(err, &fe) {
		return fe.Path, true
	}
	return "", false
}

// Re-exports so callers need a single errors import
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

func New(text string) error { return errors.New(text) }

// JoinErrors combines multiple errors into a single error, dropping nils.
func JoinErrors(errs ...error) error {
	var validErrs []error
	for _, err := range errs {
		if err != nil {
			validErrs = append(validErrs, err)
		}
	}

	if len(validErrs) == 0 {
		return nil
	}
	if len(validErrs) == 1 {
		return validErrs[0]
	}

	return &multiError{errors: validErrs}
}

// multiError represents multiple errors
type multiError struct {
	errors []error
}

func (e *multiError) Error() string {
	msg := e.errors[0].Error()
	for _, err := range e.errors[1:] {
		msg += "; " + err.Error()
	}
	return msg
}

func (e *multiError) Unwrap() []error {
	return e.errors
}
