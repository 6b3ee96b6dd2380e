package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCategory groups errors by what kind of problem they represent.
type ErrorCategory string

const (
	CategoryProtocol      ErrorCategory = "protocol"
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryFilesystem    ErrorCategory = "filesystem"
	CategoryPermission    ErrorCategory = "permission"
	CategoryNotFound      ErrorCategory = "not_found"
	CategoryUnavailable   ErrorCategory = "unavailable"
	CategoryTimeout       ErrorCategory = "timeout"
	CategoryCancelled     ErrorCategory = "cancelled"
	CategoryUnknown       ErrorCategory = "unknown"
)

// ErrorSeverity tells how serious an error is. The five levels line up one to
// one with the job escalation severities (Warning..Critical).
type ErrorSeverity string

const (
	SeverityCritical ErrorSeverity = "critical"
	SeverityHigh     ErrorSeverity = "high"
	SeverityMedium   ErrorSeverity = "medium"
	SeverityLow      ErrorSeverity = "low"
	SeverityInfo     ErrorSeverity = "info"
)

// ClassifiedError is a regular error with its category, severity and
// retry hint attached.
type ClassifiedError struct {
	Err       error
	Category  ErrorCategory
	Severity  ErrorSeverity
	Retryable bool
	UserMsg   string
}

func (e *ClassifiedError) Error() string {
	return e.Err.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// ClassifyError classifies an error based on its type and content.
// The order matters: a permission problem inside a FilesystemError is a
// permission problem first.
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	switch {
	case IsProtocolError(err):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryProtocol,
			Severity:  SeverityCritical,
			Retryable: false,
			UserMsg:   "Internal error: a job was used incorrectly.",
		}

	case IsUnavailableError(err):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryUnavailable,
			Severity:  SeverityCritical,
			Retryable: false,
			UserMsg:   "The application is shutting down.",
		}

	case IsCancellation(err):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryCancelled,
			Severity:  SeverityInfo,
			Retryable: false,
			UserMsg:   "Operation was cancelled.",
		}

	case IsTimeoutError(err):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryTimeout,
			Severity:  SeverityMedium,
			Retryable: true,
			UserMsg:   "Operation timed out. Please try again.",
		}

	case errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrNotFound):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryNotFound,
			Severity:  SeverityLow,
			Retryable: false,
			UserMsg:   "File or folder no longer exists.",
		}

	case errors.Is(err, fs.ErrPermission) || errors.Is(err, ErrPermissionDenied):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryPermission,
			Severity:  SeverityMedium,
			Retryable: true,
			UserMsg:   "Permission denied. Please check your access rights.",
		}

	case IsFilesystemError(err):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryFilesystem,
			Severity:  SeverityMedium,
			Retryable: true,
			UserMsg:   "Filesystem operation failed. Please check file permissions and paths.",
		}

	case IsConfigError(err) || IsSettingsError(err) || errors.Is(err, ErrInvalidConfig):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryConfiguration,
			Severity:  SeverityHigh,
			Retryable: false,
			UserMsg:   "Configuration error. Please check your configuration settings.",
		}

	default:
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryUnknown,
			Severity:  SeverityMedium,
			Retryable: false,
			UserMsg:   "An unexpected error occurred.",
		}
	}
}

// ShouldRetry determines if an operation could be retried based on the error
func ShouldRetry(err error) bool {
	classified := ClassifyError(err)
	if classified == nil {
		return false
	}
	return classified.Retryable
}

// GetSeverity tells how serious an error is. Nil errors are informational.
func GetSeverity(err error) ErrorSeverity {
	classified := ClassifyError(err)
	if classified == nil {
		return SeverityInfo
	}
	return classified.Severity
}

// GetCategory returns the error category, "unknown" for nil.
func GetCategory(err error) ErrorCategory {
	classified := ClassifyError(err)
	if classified == nil {
		return CategoryUnknown
	}
	return classified.Category
}

// GetUserMessage returns a message that can be shown to people.
func GetUserMessage(err error) string {
	classified := ClassifyError(err)
	if classified == nil {
		return "An error occurred."
	}
	return classified.UserMsg
}

// IsCritical checks if an error is critical severity
func IsCritical(err error) bool {
	return GetSeverity(err) == SeverityCritical
}

// WithSeverity pins the severity of err, overriding classification.
func WithSeverity(err error, severity ErrorSeverity) error {
	if err == nil {
		return nil
	}
	classified := *ClassifyError(err)
	classified.Err = err
	classified.Severity = severity
	return &classified
}

// FormatErrorForLogging formats an error for structured logging
func FormatErrorForLogging(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	classified := ClassifyError(err)
	result := map[string]interface{}{
		"error":     err.Error(),
		"category":  string(classified.Category),
		"severity":  string(classified.Severity),
		"retryable": classified.Retryable,
	}

	if jobID, ok := GetJobID(err); ok {
		result["job_id"] = jobID
	}
	if path, ok := GetPath(err); ok {
		result["path"] = path
	}

	return result
}

// LogError logs an error with its classification attached
func LogError(logger interface{ Error(string, ...interface{}) }, err error, msg string) {
	if err == nil {
		return
	}

	logData := FormatErrorForLogging(err)
	args := make([]interface{}, 0, len(logData)*2)
	for k, v := range logData {
		args = append(args, k, v)
	}

	logger.Error(msg, args...)
}

// WrapWithUserMessage wraps an error with a user-friendly message while preserving the original error
func WrapWithUserMessage(err error, userMsg string) error {
	if err == nil {
		return nil
	}

	classified := *ClassifyError(err)
	classified.Err = err
	classified.UserMsg = userMsg
	return fmt.Errorf("%s: %w", userMsg, &classified)
}
