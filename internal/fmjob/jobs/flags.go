package jobs

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ehsaniara/fmjob/internal/fmjob/common"
)

// launchMode selects how a command starts its jobs.
type launchMode int

const (
	modeAsync launchMode = iota // RunAsync on the pool, main goroutine runs the loop
	modeSync                    // RunSync on the calling goroutine
	modePump                    // RunSyncWithLoop from a loop callback
)

func (m launchMode) String() string {
	switch m {
	case modeSync:
		return "sync"
	case modePump:
		return "pump"
	default:
		return "async"
	}
}

// launchOptions are the flags shared by every command that runs jobs.
type launchOptions struct {
	async   bool
	sync    bool
	pump    bool
	timeout time.Duration
	onError string
	yes     bool
}

func newLaunchFlags(opts *launchOptions) *pflag.FlagSet {
	fs := pflag.NewFlagSet("launch", pflag.ContinueOnError)
	fs.BoolVar(&opts.async, "async", false, "Run jobs on the worker pool while the main loop waits (default)")
	fs.BoolVar(&opts.sync, "sync", false, "Run jobs one after another on the calling goroutine")
	fs.BoolVar(&opts.pump, "pump", false, "Run each job on the worker pool while blocking inside the main loop")
	fs.DurationVar(&opts.timeout, "timeout", 0, "Cancel all jobs after this long (defaults to jobs.default_timeout)")
	fs.StringVar(&opts.onError, "on-error", "", "What to do when a job reports an error: ask, continue or abort")
	fs.BoolVarP(&opts.yes, "yes", "y", false, "Answer yes to every question")
	return fs
}

// addLaunchFlags attaches the shared flag set to cmd.
func addLaunchFlags(cmd *cobra.Command, opts *launchOptions) {
	cmd.Flags().AddFlagSet(newLaunchFlags(opts))
	cmd.MarkFlagsMutuallyExclusive("async", "sync", "pump")
}

func (o *launchOptions) mode() launchMode {
	switch {
	case o.sync:
		return modeSync
	case o.pump:
		return modePump
	default:
		return modeAsync
	}
}

// resolve fills unset values from the loaded configuration.
func (o *launchOptions) resolve() {
	cfg := common.CurrentConfig()
	if o.timeout == 0 {
		o.timeout = cfg.Jobs.DefaultTimeout
	}
	if o.onError == "" {
		o.onError = strings.ToLower(cfg.Jobs.OnError)
	}
}
