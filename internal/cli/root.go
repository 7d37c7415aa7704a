package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"dtpick/internal/config"
	"dtpick/internal/format"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	DataDir    string
	PrettyJSON bool
	Format     string
	LogLevel   string

	cfg config.Config
	loc *time.Location
}

func NewRootCmd() *cobra.Command {
	app := &App{}
	pick := &pickOptions{}

	cmd := &cobra.Command{
		Use:          "dtpick",
		Short:        "Date and time picker for the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Pick a date and time interactively
  dtpick

  # Start on a given day, restricted to 2020
  dtpick pick --start 2020-02-04 --min 2020-01-01 --max "2020-12-31 23:59"

  # Shortcut for: dtpick pick --start 2020-02-04
  dtpick 2020-02-04

  # Drive the picker without a terminal
  dtpick apply --start 2020-02-04T10:00 pick-date 20 change-month 2 inc-hour
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive picker.
			return runPick(cmd, app, pick)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config.toml (default: $XDG_CONFIG_HOME/dtpick/config.toml; env DTPICK_CONFIG)")
	cmd.PersistentFlags().StringVar(&app.DataDir, "data-dir", envOr("DTPICK_DATA_DIR", ""), "Directory for pick history and debug logs (overrides data_dir)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DTPICK_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("DTPICK_LOG_LEVEL", "warn"), "Log level for stderr (debug|info|warn|error)")

	addPickFlags(cmd.Flags(), pick)

	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newGridCmd(app))
	cmd.AddCommand(newApplyCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// setup loads and validates configuration and installs the stderr logger on
// the command context.
func (app *App) setup(cmd *cobra.Command) error {
	if err := format.Check(app.Format); err != nil {
		return err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(app.LogLevel))); err != nil {
		return errInvalidArg("--log-level", app.LogLevel, "expected debug, info, warn or error")
	}

	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if app.DataDir != "" {
		cfg.DataDir = app.DataDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	app.cfg, app.loc = cfg, loc

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.Context(cmd.Context(), logger)
	cmd.SetContext(ctxlog.ContextWith(ctx, "cmd", cmd.Name()))
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
