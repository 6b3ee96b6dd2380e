package job

// Option configures a Job at construction.
type Option func(*Job)

// WithOwner binds the job to the dispatcher that runs its callbacks and
// delivers its events.
func WithOwner(owner Dispatcher) Option {
	return func(j *Job) { j.owner = owner }
}

// WithExecutor sets where RunAsync and RunSyncWithLoop submit work.
// The default starts a goroutine per job.
func WithExecutor(executor Executor) Option {
	return func(j *Job) {
		if executor != nil {
			j.executor = executor
		}
	}
}

// WithToken makes the job observe a shared cancellation token.
func WithToken(token *Token) Option {
	return func(j *Job) { j.token = token }
}

// WithErrorHandler sets the handler that answers EmitError on the owner.
func WithErrorHandler(h ErrorHandler) Option {
	return func(j *Job) { j.onError = h }
}

// WithAskHandler sets the handler that answers Ask on the owner.
func WithAskHandler(h AskHandler) Option {
	return func(j *Job) { j.onAsk = h }
}

// WithID overrides the generated job ID.
func WithID(id string) Option {
	return func(j *Job) {
		if id != "" {
			j.id = id
		}
	}
}

// WithName sets the display name used in logs and prompts.
func WithName(name string) Option {
	return func(j *Job) { j.name = name }
}
