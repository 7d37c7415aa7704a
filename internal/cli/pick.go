package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dtpick/internal/config"
	"dtpick/internal/picker"
	"dtpick/internal/store"
	"dtpick/internal/tui"

	"cloudeng.io/logging/ctxlog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const debugLogName = "debug.log"

// runPicker is swapped out in tests, which have no terminal.
var runPicker = tui.Pick

type pickOptions struct {
	start        string
	min          string
	max          string
	label        string
	hourStep     int
	minuteStep   int
	debounce     time.Duration
	firstWeekday string
	debug        bool
	save         bool
}

// addPickFlags registers the flags shared by the root command and `pick`.
// Flags left unset fall back to config.
func addPickFlags(fs *pflag.FlagSet, o *pickOptions) {
	fs.StringVar(&o.start, "start", "", "Initial value: YYYY-MM-DD, YYYY-MM-DD HH:MM, RFC3339, now, or last (newest saved pick)")
	fs.StringVar(&o.min, "min", "", "Earliest selectable value (overrides picker.min)")
	fs.StringVar(&o.max, "max", "", "Latest selectable value (overrides picker.max)")
	fs.StringVar(&o.label, "label", "", "Label shown above the picker and stored with --save")
	fs.IntVar(&o.hourStep, "hour-step", 0, "Hours per increment (overrides picker.hour_step)")
	fs.IntVar(&o.minuteStep, "minute-step", 0, "Minutes per increment (overrides picker.minute_step)")
	fs.DurationVar(&o.debounce, "debounce", 0, "Quiet period before typed values apply (overrides picker.debounce)")
	fs.StringVar(&o.firstWeekday, "first-weekday", "", "First column of the month grid (overrides picker.first_weekday)")
	fs.BoolVar(&o.debug, "debug", false, "Show raw values under each widget and log to <data-dir>/debug.log")
	fs.BoolVar(&o.save, "save", false, "Save the confirmed value to history")
}

func newPickCmd(app *App) *cobra.Command {
	o := &pickOptions{}
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date and time interactively",
		Long: strings.TrimSpace(`
Opens the date and time picker full screen. ctrl+s confirms and prints the
value; q or esc on the closed picker quits without confirming (exit status 1).
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, o)
		},
	}
	addPickFlags(cmd.Flags(), o)
	return cmd
}

type pickPlan struct {
	start time.Time
	min   string
	max   string
	save  bool
	opts  tui.Options
}

type pickResult struct {
	Value     time.Time `json:"value"`
	Confirmed bool      `json:"confirmed"`
	Label     string    `json:"label,omitempty"`
	SavedID   int64     `json:"saved_id,omitempty"`
}

func runPick(cmd *cobra.Command, app *App, o *pickOptions) error {
	ctx := cmd.Context()
	plan, err := app.planPick(ctx, cmd.Flags(), o)
	if err != nil {
		return err
	}

	// stderr belongs to the picker while it runs.
	plan.opts.Logger = slog.New(slog.DiscardHandler)
	if plan.opts.Debug {
		f, err := openDebugLog(app.cfg.DataDir)
		if err != nil {
			return err
		}
		defer f.Close()
		plan.opts.Logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	res, err := runPicker(ctxlog.Context(ctx, plan.opts.Logger), plan.start, plan.opts)
	if err != nil {
		return err
	}

	out := pickResult{Value: res.Value, Confirmed: res.Confirmed, Label: plan.opts.Label}
	if res.Confirmed && plan.save {
		saved, err := store.Store{Dir: app.cfg.DataDir}.Record(ctx, store.Pick{
			Label: plan.opts.Label,
			Value: res.Value,
			Min:   plan.min,
			Max:   plan.max,
		})
		if err != nil {
			return err
		}
		out.SavedID = saved.ID
		ctxlog.Logger(ctx).Info("saved pick", "id", saved.ID, "label", saved.Label)
	}

	if err := writeOut(cmd, app, map[string]any{"data": out}); err != nil {
		return err
	}
	if !res.Confirmed {
		return errNotConfirmed
	}
	return nil
}

// planPick merges flags over config.
func (app *App) planPick(ctx context.Context, fs *pflag.FlagSet, o *pickOptions) (pickPlan, error) {
	pc := app.cfg.Picker
	plan := pickPlan{
		min:  pc.Min,
		max:  pc.Max,
		save: o.save,
		opts: tui.Options{
			Label:        app.cfg.UI.Label,
			HourStep:     pc.HourStep,
			MinuteStep:   pc.MinuteStep,
			Debounce:     pc.Debounce,
			FirstWeekday: app.cfg.Weekday(),
			Debug:        app.cfg.UI.Debug,
		},
	}

	if fs.Changed("min") {
		plan.min = o.min
	}
	if fs.Changed("max") {
		plan.max = o.max
	}
	if fs.Changed("label") {
		plan.opts.Label = strings.TrimSpace(o.label)
	}
	if fs.Changed("debug") {
		plan.opts.Debug = o.debug
	}
	if fs.Changed("hour-step") {
		if o.hourStep < 1 {
			return pickPlan{}, errInvalidArg("--hour-step", fmt.Sprint(o.hourStep), "must be at least 1")
		}
		plan.opts.HourStep = o.hourStep
	}
	if fs.Changed("minute-step") {
		if o.minuteStep < 1 {
			return pickPlan{}, errInvalidArg("--minute-step", fmt.Sprint(o.minuteStep), "must be at least 1")
		}
		plan.opts.MinuteStep = o.minuteStep
	}
	if fs.Changed("debounce") {
		if o.debounce <= 0 {
			return pickPlan{}, errInvalidArg("--debounce", o.debounce.String(), "must be positive")
		}
		plan.opts.Debounce = o.debounce
	}
	if fs.Changed("first-weekday") {
		d, ok := picker.ParseWeekday(o.firstWeekday)
		if !ok {
			return pickPlan{}, errInvalidArg("--first-weekday", o.firstWeekday, "unknown weekday")
		}
		plan.opts.FirstWeekday = d
	}

	bounds, err := config.ParseBounds(plan.min, plan.max, app.loc)
	if err != nil {
		return pickPlan{}, errInvalidArg("bounds", "", err.Error())
	}
	plan.opts.Bounds = bounds

	plan.start, err = app.resolveStart(ctx, o.start, plan.opts.Label)
	if err != nil {
		return pickPlan{}, err
	}
	return plan, nil
}

// resolveStart parses --start. "last" reads the newest saved pick with the
// same label and falls back to now when there is none.
func (app *App) resolveStart(ctx context.Context, s, label string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "now":
		return time.Now().In(app.loc), nil
	case "last":
		p, err := store.Store{Dir: app.cfg.DataDir}.Last(ctx, label)
		if errors.Is(err, store.ErrEmpty) {
			ctxlog.Logger(ctx).Warn("no saved pick, starting from now", "label", label)
			return time.Now().In(app.loc), nil
		}
		if err != nil {
			return time.Time{}, err
		}
		return p.Value.In(app.loc), nil
	}
	t, err := picker.ParseValue(s, app.loc)
	if err != nil {
		return time.Time{}, errInvalidArg("--start", s, err.Error())
	}
	return t, nil
}

// openDebugLog points the standard logger and the returned file at
// <dataDir>/debug.log.
func openDebugLog(dataDir string) (*os.File, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dataDir, debugLogName), "dtpick")
	if err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	return f, nil
}
