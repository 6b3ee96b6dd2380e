package common

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ehsaniara/fmjob/pkg/config"
	"github.com/ehsaniara/fmjob/pkg/job"
	"github.com/ehsaniara/fmjob/pkg/logger"
	"github.com/ehsaniara/fmjob/pkg/loop"
	"github.com/ehsaniara/fmjob/pkg/pool"
	"github.com/ehsaniara/fmjob/pkg/settings"
)

var (
	ConfigPath   string
	SettingsPath string
	LogLevel     string
	JSONLog      bool
	JSONOutput   bool
	NoColor      bool

	Config   *config.Config
	Settings *settings.Store
	Log      = logger.Default()

	logCloser io.Closer
)

// Setup loads the configuration and the settings store and configures the
// global logger. Flags override the config file.
func Setup() error {
	cfg, source, err := config.LoadConfig(ConfigPath)
	if err != nil {
		return err
	}
	if LogLevel != "" {
		cfg.Logging.Level = LogLevel
	}
	if JSONLog {
		cfg.Logging.Format = "json"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc, closer, err := cfg.LoggerConfig()
	if err != nil {
		return err
	}
	logger.Configure(lc)
	logCloser = closer
	Log = logger.Default()
	Log.Debug("configuration loaded", "source", source)

	if SettingsPath != "" {
		cfg.Settings.Path = SettingsPath
	}
	store := settings.New(cfg.Settings.Path, settings.WithLogger(Log))
	if err := store.Load(); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	Use(cfg, store)
	return nil
}

// Use installs an already loaded configuration and settings store.
func Use(cfg *config.Config, store *settings.Store) {
	Config = cfg
	Settings = store
}

// CurrentConfig returns the loaded configuration, or the defaults before
// Setup has run.
func CurrentConfig() *config.Config {
	if Config != nil {
		return Config
	}
	defaults := config.DefaultConfig
	return &defaults
}

// CurrentSettings returns the loaded settings store, or an unsaved store
// holding the defaults.
func CurrentSettings() *settings.Store {
	if Settings != nil {
		return Settings
	}
	Settings = settings.New(CurrentConfig().Settings.Path, settings.WithLogger(Log))
	return Settings
}

// Teardown releases what Setup opened.
func Teardown() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// Runtime is the owner loop, worker pool and shared token for one command.
type Runtime struct {
	Loop  *loop.Loop
	Pool  *pool.Pool
	Token *job.Token

	stopTimeout time.Duration
}

// NewRuntime builds a Runtime from the loaded configuration.
func NewRuntime() *Runtime {
	cfg := CurrentConfig()
	return &Runtime{
		Loop:        loop.New(loop.WithLogger(Log), loop.WithPendingWarning(cfg.Loop.MaxPendingWarn)),
		Pool:        pool.New(pool.WithSize(cfg.Pool.Size), pool.WithLogger(Log)),
		Token:       job.NewToken(),
		stopTimeout: cfg.Pool.StopTimeout,
	}
}

// Options returns the job options every job of this runtime shares.
func (r *Runtime) Options() []job.Option {
	return []job.Option{
		job.WithOwner(r.Loop),
		job.WithExecutor(r.Pool),
		job.WithToken(r.Token),
	}
}

// CancelAfter sets the shared token once d has elapsed. Zero disables it.
func (r *Runtime) CancelAfter(d time.Duration) (stop func()) {
	if d <= 0 {
		return func() {}
	}
	timer := time.AfterFunc(d, func() {
		Log.Warn("deadline reached, cancelling jobs", "timeout", d)
		r.Token.Set()
	})
	return func() { timer.Stop() }
}

// CancelOn sets the shared token when ctx is done.
func (r *Runtime) CancelOn(ctx context.Context) (stop func() bool) {
	return context.AfterFunc(ctx, r.Token.Set)
}

// Close stops the pool and closes the loop.
func (r *Runtime) Close() error {
	ctx := context.Background()
	if r.stopTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.stopTimeout)
		defer cancel()
	}
	err := r.Pool.Stop(ctx)
	r.Loop.Close()
	return err
}
