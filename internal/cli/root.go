// Package cli is the songbook command line: argument handling and the wiring
// from configuration to the interactive program.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llehouerou/songbook/internal/app"
	"github.com/llehouerou/songbook/internal/config"
	"github.com/llehouerou/songbook/internal/db"
	"github.com/llehouerou/songbook/internal/errmsg"
	"github.com/llehouerou/songbook/internal/library"
	"github.com/llehouerou/songbook/internal/logging"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "0.1.0"

// ErrInvalidArgument is returned for positional arguments, unknown flags and
// more than one argument of any kind.
var ErrInvalidArgument = errors.New("invalid argument")

const usageHint = `use "-h" or "--help" for usage information`

const usageTemplate = `
Usage: {{.CommandPath}} [OPTIONS]

Options:
  <NONE>          Run the song library
  -v, --version   Print version information
  -h, --help      Print help (you are here)
`

const versionTemplate = `
{{.Name}} v{{.Version}}
Source: github.com/llehouerou/songbook
`

// Runner drives the interactive program until it exits.
type Runner func(ctx context.Context, m tea.Model) error

// NewRootCmd builds the root command. run is invoked once startup succeeds.
func NewRootCmd(run Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "songbook",
		Short:         "A terminal song library",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w %q, %s", ErrInvalidArgument, args[0], usageHint)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return start(cmd.Context(), cfg, run)
		},
	}

	cmd.SetUsageTemplate(usageTemplate)
	cmd.SetVersionTemplate(versionTemplate)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w, %s", ErrInvalidArgument, err, usageHint)
	})
	return cmd
}

// Execute runs the root command against the process arguments.
func Execute(ctx context.Context) error {
	return Run(ctx, NewRootCmd(RunProgram), os.Args[1:])
}

// Run executes cmd with args. At most one argument is accepted; the check
// happens before flag parsing so "-v extra" or "-h -v" fail instead of
// printing version or help.
func Run(ctx context.Context, cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one argument, got %d, %s",
			ErrInvalidArgument, len(args), usageHint)
	}
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// RunProgram runs m full screen.
func RunProgram(ctx context.Context, m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// start opens the logger and the store, then hands the model to run.
func start(ctx context.Context, cfg *config.Config, run Runner) error {
	log, logFile, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	defer logFile.Close()

	m, store, err := newModel(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("startup failed")
		return err
	}
	defer store.Close()

	if err := run(ctx, m); err != nil {
		log.WithError(err).Error("program exited with error")
		return err
	}
	log.Info("session end")
	return nil
}

// newModel opens the database and builds the application model over it.
// The returned store must be closed by the caller.
func newModel(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*app.Model, io.Closer, error) {
	conn, err := db.Open(ctx, db.Options{
		Path:              cfg.Database.Path,
		StartCommand:      cfg.Database.StartCommand,
		CaseSensitiveLike: cfg.Search.CaseSensitive,
	})
	if err != nil {
		op := errmsg.OpDatabaseOpen
		if errors.Is(err, db.ErrStartFailed) {
			op = errmsg.OpDatabaseStart
		}
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	store, err := library.New(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	log.WithFields(logrus.Fields{
		"path":           cfg.Database.Path,
		"case_sensitive": cfg.Search.CaseSensitive,
	}).Info("database opened")

	m := app.New(app.Options{
		Store:        store,
		Logger:       log,
		QueryTimeout: cfg.Database.QueryTimeout,
		Debug:        cfg.UI.Debug,
	})
	return m, store, nil
}
