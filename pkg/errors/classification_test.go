package errors

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name              string
		err               error
		expectedCategory  ErrorCategory
		expectedSeverity  ErrorSeverity
		expectedRetryable bool
	}{
		{
			name:             "ProtocolError",
			err:              NewProtocolError("RunSync", ErrAlreadyStarted),
			expectedCategory: CategoryProtocol,
			expectedSeverity: SeverityCritical,
		},
		{
			name:             "OwnerClosed",
			err:              fmt.Errorf("call: %w", ErrOwnerClosed),
			expectedCategory: CategoryUnavailable,
			expectedSeverity: SeverityCritical,
		},
		{
			name:             "Cancelled",
			err:              context.Canceled,
			expectedCategory: CategoryCancelled,
			expectedSeverity: SeverityInfo,
		},
		{
			name:              "Timeout",
			err:               context.DeadlineExceeded,
			expectedCategory:  CategoryTimeout,
			expectedSeverity:  SeverityMedium,
			expectedRetryable: true,
		},
		{
			name:             "NotExist",
			err:              WrapFilesystemError("/gone", "stat", fs.ErrNotExist),
			expectedCategory: CategoryNotFound,
			expectedSeverity: SeverityLow,
		},
		{
			name:              "Permission",
			err:               WrapFilesystemError("/root", "open", fs.ErrPermission),
			expectedCategory:  CategoryPermission,
			expectedSeverity:  SeverityMedium,
			expectedRetryable: true,
		},
		{
			name:              "Filesystem",
			err:               WrapFilesystemError("/tmp", "write", fmt.Errorf("short write")),
			expectedCategory:  CategoryFilesystem,
			expectedSeverity:  SeverityMedium,
			expectedRetryable: true,
		},
		{
			name:             "Config",
			err:              WrapConfigError("pool", "size", ErrInvalidConfig),
			expectedCategory: CategoryConfiguration,
			expectedSeverity: SeverityHigh,
		},
		{
			name:             "Unknown",
			err:              fmt.Errorf("something odd"),
			expectedCategory: CategoryUnknown,
			expectedSeverity: SeverityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)
			if classified == nil {
				t.Fatal("ClassifyError() returned nil")
			}
			if classified.Category != tt.expectedCategory {
				t.Errorf("Category = %v, want %v", classified.Category, tt.expectedCategory)
			}
			if classified.Severity != tt.expectedSeverity {
				t.Errorf("Severity = %v, want %v", classified.Severity, tt.expectedSeverity)
			}
			if classified.Retryable != tt.expectedRetryable {
				t.Errorf("Retryable = %v, want %v", classified.Retryable, tt.expectedRetryable)
			}
			if classified.UserMsg == "" {
				t.Error("UserMsg should not be empty")
			}
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	if ClassifyError(nil) != nil {
		t.Error("ClassifyError(nil) should return nil")
	}
	if GetSeverity(nil) != SeverityInfo {
		t.Error("GetSeverity(nil) should be info")
	}
	if GetCategory(nil) != CategoryUnknown {
		t.Error("GetCategory(nil) should be unknown")
	}
	if ShouldRetry(nil) {
		t.Error("ShouldRetry(nil) should be false")
	}
}

func TestWithSeverity(t *testing.T) {
	err := WithSeverity(WrapFilesystemError("/a", "copy", fs.ErrNotExist), SeverityCritical)

	if !IsCritical(err) {
		t.Errorf("GetSeverity() = %v, want critical", GetSeverity(err))
	}
	if GetCategory(err) != CategoryNotFound {
		t.Errorf("GetCategory() = %v, want not_found", GetCategory(err))
	}
	if WithSeverity(nil, SeverityHigh) != nil {
		t.Error("WithSeverity(nil) should return nil")
	}
}

func TestFormatErrorForLogging(t *testing.T) {
	err := WrapJobError("job-9", "scan", WrapFilesystemError("/srv", "readdir", fs.ErrPermission))
	fields := FormatErrorForLogging(err)

	if fields["job_id"] != "job-9" {
		t.Errorf("job_id = %v, want job-9", fields["job_id"])
	}
	if fields["path"] != "/srv" {
		t.Errorf("path = %v, want /srv", fields["path"])
	}
	if fields["category"] != string(CategoryPermission) {
		t.Errorf("category = %v, want permission", fields["category"])
	}
	if FormatErrorForLogging(nil) != nil {
		t.Error("FormatErrorForLogging(nil) should be nil")
	}
}

type recordingLogger struct {
	msg  string
	args []interface{}
}

func (r *recordingLogger) Error(msg string, args ...interface{}) {
	r.msg = msg
	r.args = args
}

func TestLogError(t *testing.T) {
	rec := &recordingLogger{}
	LogError(rec, nil, "ignored")
	if rec.msg != "" {
		t.Error("LogError(nil) should not log")
	}

	LogError(rec, ErrTimeout, "scan failed")
	if rec.msg != "scan failed" {
		t.Errorf("msg = %v, want 'scan failed'", rec.msg)
	}
	if len(rec.args)%2 != 0 || len(rec.args) == 0 {
		t.Errorf("args should be key/value pairs, got %v", rec.args)
	}
}

func TestWrapWithUserMessage(t *testing.T) {
	err := WrapWithUserMessage(ErrTimeout, "Scan took too long")
	if !strings.HasPrefix(err.Error(), "Scan took too long: ") {
		t.Errorf("Error() = %v", err.Error())
	}
	if GetUserMessage(err) != "Scan took too long" {
		t.Errorf("GetUserMessage() = %v", GetUserMessage(err))
	}
	if !Is(err, ErrTimeout) {
		t.Error("wrapped error should still match ErrTimeout")
	}
	if WrapWithUserMessage(nil, "x") != nil {
		t.Error("WrapWithUserMessage(nil) should return nil")
	}
}
