package job

import (
	"github.com/ehsaniara/fmjob/pkg/errors"
)

// NoAnswer is returned by Ask when the question went unanswered.
const NoAnswer = -1

// Question is a multiple-choice prompt put to the owner.
type Question struct {
	Prompt  string
	Options []string
}

// EmitError reports err to the owner and blocks until the owner's
// ErrorHandler has picked an Action. Without a handler, errors below
// Severe continue and the rest abort. Critical errors always abort. Abort
// cancels the job; Retry is only advice to the caller.
func (j *Job) EmitError(err error, sev Severity) Action {
	if !j.IsRunning() {
		if sev >= SeverityCritical {
			j.RequestCancel()
		}
		return ActionAbort
	}

	action, callErr := Call(j, func(j *Job) Action {
		return j.resolveError(err, sev)
	})
	if callErr != nil {
		j.RequestCancel()
		return ActionAbort
	}
	return action
}

// resolveError runs on the owner.
func (j *Job) resolveError(err error, sev Severity) Action {
	action := DefaultAction(sev)
	if h := j.errorHandler(); h != nil {
		if picked := h(j, err, sev); picked.valid() {
			action = picked
		}
	}
	if sev >= SeverityCritical {
		action = ActionAbort
	}
	if action == ActionAbort {
		j.RequestCancel()
	}

	j.publish(Event{Kind: EventError, Err: err, Severity: sev, Action: action})
	return action
}

// Ask puts a question to the owner and returns the chosen option index, or
// NoAnswer.
func (j *Job) Ask(prompt string, options ...string) int {
	answer, _ := j.AskQuestion(Question{Prompt: prompt, Options: options})
	return answer
}

// AskQuestion is Ask with the reason for a missing answer. An unanswered or
// cancelled question yields NoAnswer with a nil error.
func (j *Job) AskQuestion(q Question) (int, error) {
	if !j.IsRunning() {
		return NoAnswer, errors.NewProtocolError("ask", errors.ErrNotRunning)
	}
	if j.IsCancelled() {
		return NoAnswer, nil
	}

	type reply struct {
		answer int
		err    error
	}
	r, err := Call(j, func(j *Job) reply {
		answer, err := j.resolveQuestion(q)
		return reply{answer: answer, err: err}
	})
	if err != nil {
		return NoAnswer, err
	}
	if r.err != nil {
		return NoAnswer, r.err
	}
	if j.IsCancelled() {
		return NoAnswer, nil
	}
	return r.answer, nil
}

// resolveQuestion runs on the owner.
func (j *Job) resolveQuestion(q Question) (int, error) {
	answer := NoAnswer
	var err error

	if h := j.askHandler(); h != nil && !j.IsCancelled() {
		answer = h(j, q)
		if answer != NoAnswer && (answer < 0 || answer >= len(q.Options)) {
			err = errors.NewProtocolError("ask", errors.ErrInvalidAnswer)
			answer = NoAnswer
		}
	}

	j.publish(Event{Kind: EventAsk, Question: q, Answer: answer})
	return answer, err
}
