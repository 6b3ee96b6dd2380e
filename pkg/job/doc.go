// Package job runs cancellable units of work on background goroutines while
// keeping every callback on the goroutine that owns the job.
//
// A Job wraps a Runner. The application binds it to an owner (usually a
// *loop.Loop running on the UI or main goroutine), subscribes to its events
// and launches it with one of three strategies:
//
//   - RunAsync submits the job to an Executor and returns immediately. The job
//     is released right after its terminal event has been delivered.
//   - RunSync executes the runner inline. The calling goroutine acts as the
//     owner, so callbacks and events run directly on it.
//   - RunSyncWithLoop hands the runner to another goroutine and pumps the
//     owner loop until the terminal event has been dispatched.
//
// While running, the runner talks to the owner through a synchronous bridge:
// CallOnOwner for arbitrary calls, EmitError to escalate an error and let the
// owner's ErrorHandler pick an Action, and Ask to put a multiple-choice
// question to the owner's AskHandler.
//
// Cancellation is cooperative. RequestCancel, a shared Token or an Abort
// action only set flags and cancel the runner's context; the runner has to
// poll IsCancelled (or watch ctx) at safe points and return.
//
// The package never logs.
package job
