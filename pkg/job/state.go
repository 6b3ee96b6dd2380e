package job

// State represents the lifecycle state of a job
type State string

const (
	StateCreated   State = "CREATED"
	StateRunning   State = "RUNNING"
	StateCancelled State = "CANCELLED"
	StateFinished  State = "FINISHED"
)

// IsTerminal returns true once no further execution, error report or event
// delivery can happen.
func (s State) IsTerminal() bool {
	return s == StateCancelled || s == StateFinished
}

func (s State) String() string {
	return string(s)
}
