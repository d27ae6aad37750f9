// Package cli implements the tablekit command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tablekit/internal/config"
	"github.com/Makepad-fr/tablekit/internal/logging"
	"github.com/Makepad-fr/tablekit/internal/ui"
	"github.com/Makepad-fr/tablekit/internal/validation"
)

// Version is the tablekit release.
const Version = "0.1.0"

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitUsage     = 2
)

// errRejected means a candidate row failed validation; the messages have
// already been printed.
var errRejected = errors.New("row rejected")

type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErr(err error) error { return &usageError{err: err} }

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile string
	theme      string
	logLevel   string
	noColor    bool
}

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	validator *validation.Validator
	out       io.Writer
	errOut    io.Writer
	logFile   *os.File
}

// NewRootCmd creates the top-level "tablekit" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	a := &app{}

	root := &cobra.Command{
		Use:   "tablekit",
		Short: "Admin tables in the terminal",
		Long: `tablekit shows admin-dashboard tables (generic, check, columns,
development) with an add-row form, row removal, search, sorting and
pagination. Rows live in memory and are gone when the program exits.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.init(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageErr(err) })

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: ./tablekit.yaml or ~/.tablekit/tablekit.yaml)")
	root.PersistentFlags().StringVar(&flags.theme, "theme", "", "output theme: classic, neon or mono")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newTUICmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errRejected):
		return exitUserError
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		ui.Fail(os.Stderr, err.Error())
		fmt.Fprintln(os.Stderr)
		_ = root.Usage()
		return exitUsage
	}
	ui.Fail(os.Stderr, err.Error())
	return exitUserError
}

func (a *app) init(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return usageErr(err)
	}
	ui.SetTheme(cfg.Theme)
	if flags.noColor {
		ui.SetColorForcing(false, true)
	}

	a.cfg = cfg
	a.out = cmd.OutOrStdout()
	a.errOut = cmd.ErrOrStderr()
	a.validator = validation.NewValidator()

	// The interactive view owns the terminal, so it only logs to a file.
	var w io.Writer = a.errOut
	if cmd.Name() == "tui" {
		w = io.Discard
	}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		w = f
	}
	a.log = logging.Setup(cfg.Log.Level, cfg.Log.Format, w).With("command", cmd.Name())
	return nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
