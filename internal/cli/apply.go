package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dtpick/internal/config"
	"dtpick/internal/picker"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

// applyOp is one state operation. Exactly one of date and clock is set; n is
// zero for ops without an argument.
type applyOp struct {
	takesArg bool
	date     func(*picker.DateState, int) bool
	clock    func(*picker.TimeState, int) bool
}

var applyOps = map[string]applyOp{
	"pick-date":     {takesArg: true, date: (*picker.DateState).PickDate},
	"change-month":  {takesArg: true, date: (*picker.DateState).ChangeMonth},
	"change-year":   {takesArg: true, date: (*picker.DateState).ChangeYear},
	"set-month":     {takesArg: true, date: (*picker.DateState).SetSpecificMonth},
	"set-year":      {takesArg: true, date: (*picker.DateState).SetSpecificYear},
	"shift-days":    {takesArg: true, date: (*picker.DateState).ShiftDays},
	"change-hour":   {takesArg: true, clock: (*picker.TimeState).ChangeHour},
	"change-minute": {takesArg: true, clock: (*picker.TimeState).ChangeMinute},
	"inc-hour":      {clock: func(s *picker.TimeState, _ int) bool { return s.IncrementHour() }},
	"dec-hour":      {clock: func(s *picker.TimeState, _ int) bool { return s.DecrementHour() }},
	"inc-minute":    {clock: func(s *picker.TimeState, _ int) bool { return s.IncrementMinute() }},
	"dec-minute":    {clock: func(s *picker.TimeState, _ int) bool { return s.DecrementMinute() }},
}

type opCall struct {
	name string
	op   applyOp
	arg  *int
}

type applyStep struct {
	Op       string    `json:"op"`
	Arg      *int      `json:"arg,omitempty"`
	Accepted bool      `json:"accepted"`
	Value    time.Time `json:"value"`
}

type applyResult struct {
	Start time.Time   `json:"start"`
	Value time.Time   `json:"value"`
	Steps []applyStep `json:"steps"`
}

// moment keeps a date state and a time state on the same value, the way the
// composite picker keeps its two children in sync.
type moment struct {
	date  picker.DateState
	clock picker.TimeState
}

func newMoment(start time.Time, bounds picker.Bounds, hourStep, minuteStep int) *moment {
	d := picker.NewDateState(start, bounds)
	return &moment{
		date:  d,
		clock: picker.NewTimeState(d.Value(), bounds, hourStep, minuteStep),
	}
}

func (m *moment) value() time.Time { return m.date.Value() }

func (m *moment) apply(op applyOp, n int) bool {
	if op.date != nil {
		if !op.date(&m.date, n) {
			return false
		}
		m.clock.SetValue(m.date.Value())
		return true
	}
	if !op.clock(&m.clock, n) {
		return false
	}
	m.date.SetValue(m.clock.Value())
	return true
}

func parseOps(args []string) ([]opCall, error) {
	calls := make([]opCall, 0, len(args))
	for i := 0; i < len(args); i++ {
		name := strings.ToLower(strings.TrimSpace(args[i]))
		op, ok := applyOps[name]
		if !ok {
			return nil, errUnknownOp(args[i])
		}
		c := opCall{name: name, op: op}
		if op.takesArg {
			if i+1 >= len(args) {
				return nil, errInvalidArg(name, "", "missing number")
			}
			i++
			n, err := strconv.Atoi(strings.TrimSpace(args[i]))
			if err != nil {
				return nil, errInvalidArg(name, args[i], "not an integer")
			}
			c.arg = &n
		}
		calls = append(calls, c)
	}
	return calls, nil
}

func newApplyCmd(app *App) *cobra.Command {
	var (
		start                string
		minS, maxS           string
		hourStep, minuteStep int
	)

	cmd := &cobra.Command{
		Use:   "apply [op [n]]...",
		Short: "Apply picker operations to a value without a terminal",
		Long: strings.TrimSpace(`
Runs date and time operations in order and prints the resulting value and
whether each operation was accepted. Rejected operations leave the value
unchanged. Flags go before the first op so negative numbers read as arguments.

Ops: pick-date N, change-month N, change-year N, set-month N, set-year N,
shift-days N, change-hour N, change-minute N, inc-hour, dec-hour, inc-minute,
dec-minute.
`),
		Example: strings.TrimSpace(`
  dtpick apply --start 2020-02-04T10:00 pick-date 20 change-month 2 inc-hour
  dtpick apply --start 2020-01-31 --max 2020-12-31 change-month -1 set-year 2021
`),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calls, err := parseOps(args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("min") {
				minS = app.cfg.Picker.Min
			}
			if !cmd.Flags().Changed("max") {
				maxS = app.cfg.Picker.Max
			}
			bounds, err := config.ParseBounds(minS, maxS, app.loc)
			if err != nil {
				return errInvalidArg("bounds", "", err.Error())
			}
			if !cmd.Flags().Changed("hour-step") {
				hourStep = app.cfg.Picker.HourStep
			}
			if !cmd.Flags().Changed("minute-step") {
				minuteStep = app.cfg.Picker.MinuteStep
			}
			if hourStep < 1 || minuteStep < 1 {
				return errInvalidArg("step", fmt.Sprintf("%d/%d", hourStep, minuteStep), "steps must be at least 1")
			}

			begin, err := app.resolveStart(cmd.Context(), start, app.cfg.UI.Label)
			if err != nil {
				return err
			}

			logger := ctxlog.Logger(cmd.Context())
			m := newMoment(begin, bounds, hourStep, minuteStep)
			res := applyResult{Start: m.value(), Steps: make([]applyStep, 0, len(calls))}
			for _, c := range calls {
				n := 0
				if c.arg != nil {
					n = *c.arg
				}
				ok := m.apply(c.op, n)
				logger.Debug("apply", "op", c.name, "arg", n, "accepted", ok, "value", m.value())
				res.Steps = append(res.Steps, applyStep{Op: c.name, Arg: c.arg, Accepted: ok, Value: m.value()})
			}
			res.Value = m.value()

			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Initial value: YYYY-MM-DD, YYYY-MM-DD HH:MM, RFC3339, now, or last")
	cmd.Flags().StringVar(&minS, "min", "", "Earliest accepted value (overrides picker.min)")
	cmd.Flags().StringVar(&maxS, "max", "", "Latest accepted value (overrides picker.max)")
	cmd.Flags().IntVar(&hourStep, "hour-step", 0, "Hours per inc-hour/dec-hour (overrides picker.hour_step)")
	cmd.Flags().IntVar(&minuteStep, "minute-step", 0, "Minutes per inc-minute/dec-minute (overrides picker.minute_step)")
	cmd.Flags().SetInterspersed(false)

	return cmd
}
