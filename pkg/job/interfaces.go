package job

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Runner is the work a job performs. Run is called once, on the executing
// goroutine. ctx is cancelled as soon as the job is cancelled, either
// directly or through its Token.
type Runner interface {
	Run(ctx context.Context, j *Job) error
}

// RunnerFunc adapts an ordinary function to Runner.
type RunnerFunc func(ctx context.Context, j *Job) error

func (f RunnerFunc) Run(ctx context.Context, j *Job) error {
	return f(ctx, j)
}

// Dispatcher is the owner side of a job: a queue whose callbacks all run on
// one goroutine. Post must not block. Done is closed when the owner shuts
// down and will never run another callback.
//
//counterfeiter:generate . Dispatcher
type Dispatcher interface {
	Post(fn func()) error
	Done() <-chan struct{}
}

// Pumper is a Dispatcher that can run its own queue from inside a callback
// until the until channel closes.
type Pumper interface {
	Dispatcher
	Pump(until <-chan struct{}) error
}

// Executor runs tasks on background goroutines. Submit must not block.
//
//counterfeiter:generate . Executor
type Executor interface {
	Submit(task func()) error
}

// GoExecutor starts a new goroutine per task.
type GoExecutor struct{}

func (GoExecutor) Submit(task func()) error {
	go task()
	return nil
}

// ErrorHandler decides, on the owner goroutine, how a job proceeds after an
// error reported with EmitError.
type ErrorHandler func(j *Job, err error, sev Severity) Action

// AskHandler answers a question on the owner goroutine. It returns the index
// of the chosen option or NoAnswer.
type AskHandler func(j *Job, q Question) int
