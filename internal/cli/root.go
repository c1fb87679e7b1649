package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/tuido/internal/app"
	"github.com/idilsaglam/tuido/internal/config"
	"github.com/idilsaglam/tuido/internal/logging"
	"github.com/idilsaglam/tuido/internal/store"
	"github.com/idilsaglam/tuido/internal/todolist"
	"github.com/idilsaglam/tuido/internal/tui"
	"github.com/idilsaglam/tuido/internal/ui"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// Options holds the persistent flags.
type Options struct {
	ConfigPath string
	DataPath   string
	Backend    string
	Theme      string
	LogLevel   string
}

// NewRootCmd builds the command tree. Without a subcommand the
// interactive list opens.
func NewRootCmd() *cobra.Command {
	opts := &Options{}
	root := &cobra.Command{
		Use:   "tuido",
		Short: "A terminal todo list",
		Long: `tuido keeps a todo list in a flat file and lets you edit it from the terminal.

Running without a subcommand opens the interactive list.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown subcommand: %s", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "config file (default: $XDG_CONFIG_HOME/tuido/config.yaml)")
	pf.StringVar(&opts.DataPath, "data", "", "data file path (default: todos.json in the working directory)")
	pf.StringVar(&opts.Backend, "backend", "", "storage backend: file or bolt")
	pf.StringVar(&opts.Theme, "theme", "", "output theme: classic, neon or mono")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (default: $"+logging.LogLevelEnvVar+")")

	root.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newDoneCmd(opts),
		newRemoveCmd(opts),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string) int {
	return execute(NewRootCmd(), args)
}

func execute(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.Execute()
	logging.Sync()
	if err == nil {
		return ExitOK
	}
	ui.Fail(root.ErrOrStderr(), err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

// session is everything a command needs to work on the list.
type session struct {
	cfg   *config.Config
	store store.Store
	list  *todolist.List
}

// openSession loads config, sets up logging and theme, opens the store and
// loads the list. Any failure here is fatal for the command.
func openSession(opts *Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.DataPath != "" {
		cfg.Storage.Path = opts.DataPath
	}
	if opts.Backend != "" {
		cfg.Storage.Backend = opts.Backend
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, usagef("%v", err)
	}

	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.Theme)

	st, err := store.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}
	raw, err := st.Load()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load: %w", err)
	}
	l := todolist.New()
	if err := l.Load(raw); err != nil {
		st.Close()
		return nil, fmt.Errorf("load: %w", err)
	}
	logging.Info("list loaded",
		zap.String("backend", cfg.Storage.Backend),
		zap.Int("records", l.Len()),
	)
	return &session{cfg: cfg, store: st, list: l}, nil
}

func (s *session) save() error {
	if err := s.list.Save(s.store); err != nil {
		return err
	}
	logging.Debug("list saved", zap.Int("records", s.list.Len()))
	return nil
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		logging.Warn("closing store", zap.Error(err))
	}
}

func runInteractive(opts *Options) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	a := app.New(s.list, s.store, nil)
	if err := tui.Run(a); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Main is the entry point used by cmd/tuido.
func Main() {
	os.Exit(Execute(os.Args[1:]))
}
