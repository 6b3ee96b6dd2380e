package jobs

import (
	"github.com/ehsaniara/fmjob/internal/fmjob/common"
	"github.com/ehsaniara/fmjob/pkg/job"
)

// getStateColor returns the ANSI color code for a given job state
func getStateColor(state job.State) (string, string) {
	if common.NoColor {
		return "", ""
	}

	var stateColor string
	switch state {
	case job.StateRunning:
		stateColor = "\033[33m" // Yellow
	case job.StateFinished:
		stateColor = "\033[32m" // Green
	case job.StateCancelled:
		stateColor = "\033[35m" // Magenta
	case job.StateCreated:
		stateColor = "\033[36m" // Cyan
	default:
		stateColor = ""
	}
	resetColor := "\033[0m"
	return stateColor, resetColor
}
