package jobs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/job"
)

// Error policies accepted by --on-error and jobs.on_error
const (
	PolicyAsk      = "ask"
	PolicyContinue = "continue"
	PolicyAbort    = "abort"
)

func validPolicy(policy string) error {
	switch policy {
	case PolicyAsk, PolicyContinue, PolicyAbort:
		return nil
	default:
		return fmt.Errorf("invalid --on-error value %q (want ask, continue or abort)", policy)
	}
}

// Console answers job errors and questions on a terminal. Its handlers are
// called on the owner goroutine only, so reads never interleave.
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	policy    string
	assumeYes bool
}

func NewConsole(in io.Reader, out io.Writer, policy string, assumeYes bool) *Console {
	return &Console{
		in:        bufio.NewReader(in),
		out:       out,
		policy:    policy,
		assumeYes: assumeYes,
	}
}

// HandleError applies the error policy. With "ask" the user picks retry,
// continue or abort; no usable answer falls back to the severity default.
func (c *Console) HandleError(j *job.Job, err error, sev job.Severity) job.Action {
	fmt.Fprintf(c.out, "%s: %s: %s (%v)\n", j.Name(), sev, errors.GetUserMessage(err), err)

	switch c.policy {
	case PolicyContinue:
		return job.ActionContinue
	case PolicyAbort:
		return job.ActionAbort
	}

	fmt.Fprint(c.out, "[r]etry, [c]ontinue or [a]bort? ")
	line, readErr := c.readLine()
	if readErr != nil {
		fmt.Fprintln(c.out)
		return job.DefaultAction(sev)
	}

	switch strings.ToLower(line) {
	case "r", "retry":
		return job.ActionRetry
	case "c", "continue":
		return job.ActionContinue
	case "a", "abort":
		return job.ActionAbort
	default:
		return job.DefaultAction(sev)
	}
}

// HandleAsk prints the numbered options and reads the choice. --yes picks
// the first option without asking.
func (c *Console) HandleAsk(j *job.Job, q job.Question) int {
	if len(q.Options) == 0 {
		return job.NoAnswer
	}
	if c.assumeYes {
		return 0
	}

	fmt.Fprintf(c.out, "%s\n", q.Prompt)
	for i, option := range q.Options {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, option)
	}
	fmt.Fprint(c.out, "> ")

	line, err := c.readLine()
	if err != nil {
		fmt.Fprintln(c.out)
		return job.NoAnswer
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		for i, option := range q.Options {
			if strings.EqualFold(option, line) {
				return i
			}
		}
		return job.NoAnswer
	}
	if n < 1 || n > len(q.Options) {
		return job.NoAnswer
	}
	return n - 1
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
