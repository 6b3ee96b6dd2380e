package job

import (
	"fmt"
	"strings"

	"github.com/ehsaniara/fmjob/pkg/errors"
)

// Severity is the escalation level attached to a reported error.
type Severity int

const (
	SeverityWarning  Severity = iota // not an error, just a warning
	SeverityMild                     // can be ignored most of the time
	SeverityModerate                 // moderate errors
	SeveritySevere                   // aborts unless the handler decides otherwise
	SeverityCritical                 // always aborts
)

var severityNames = [...]string{"warning", "mild", "moderate", "severe", "critical"}

func (s Severity) String() string {
	if s < SeverityWarning || s > SeverityCritical {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity accepts the names printed by String, case-insensitively.
func ParseSeverity(name string) (Severity, error) {
	for i, n := range severityNames {
		if strings.EqualFold(name, n) {
			return Severity(i), nil
		}
	}
	return SeverityWarning, fmt.Errorf("unknown severity: %s", name)
}

// SeverityFor maps an error's classification onto a job severity. Runners
// use it when they have no better idea of how bad a failure is.
func SeverityFor(err error) Severity {
	switch errors.GetSeverity(err) {
	case errors.SeverityInfo:
		return SeverityWarning
	case errors.SeverityLow:
		return SeverityMild
	case errors.SeverityHigh:
		return SeveritySevere
	case errors.SeverityCritical:
		return SeverityCritical
	default:
		return SeverityModerate
	}
}

// Action is the owner's verdict on how to proceed after an error.
type Action int

const (
	ActionContinue Action = iota // ignore the error and continue remaining work
	ActionRetry                  // retry the failed operation; the runner does the retrying
	ActionAbort                  // abort the whole job
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionRetry:
		return "retry"
	case ActionAbort:
		return "abort"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction accepts "continue", "retry" and "abort", case-insensitively.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(name) {
	case "continue":
		return ActionContinue, nil
	case "retry":
		return ActionRetry, nil
	case "abort":
		return ActionAbort, nil
	default:
		return ActionAbort, fmt.Errorf("unknown action: %s", name)
	}
}

func (a Action) valid() bool {
	return a >= ActionContinue && a <= ActionAbort
}

// DefaultAction is what happens to an error nobody handles: everything below
// Severe continues, Severe and Critical abort.
func DefaultAction(s Severity) Action {
	if s >= SeveritySevere {
		return ActionAbort
	}
	return ActionContinue
}
