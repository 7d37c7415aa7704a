package cli

import (
	"strings"
	"time"

	"dtpick/internal/config"
	"dtpick/internal/picker"

	"github.com/spf13/cobra"
)

type gridDay struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Selectable bool   `json:"selectable"`
}

type gridResult struct {
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	MonthName   string    `json:"month_name"`
	DaysInMonth int       `json:"days_in_month"`
	Weekdays    []string  `json:"weekdays"`
	Days        []gridDay `json:"days"`
	// Weeks holds day numbers per calendar row; 0 pads the first and last rows.
	Weeks [][7]int `json:"weeks"`
}

func newGridCmd(app *App) *cobra.Command {
	var (
		firstWeekday string
		minS, maxS   string
	)

	cmd := &cobra.Command{
		Use:   "grid [YYYY-MM]",
		Short: "Print the day grid of a month (default: current month)",
		Example: strings.TrimSpace(`
  dtpick grid 2020-02
  dtpick grid 2020-02 --first-weekday monday --min 2020-02-10
`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().In(app.loc)
			year, month := now.Year(), now.Month()
			if len(args) == 1 {
				t, err := time.ParseInLocation("2006-01", strings.TrimSpace(args[0]), app.loc)
				if err != nil || t.Year() < picker.MinYear {
					return errInvalidArg("month", args[0], "expected YYYY-MM")
				}
				year, month = t.Year(), t.Month()
			}

			first := app.cfg.Weekday()
			if cmd.Flags().Changed("first-weekday") {
				d, ok := picker.ParseWeekday(firstWeekday)
				if !ok {
					return errInvalidArg("--first-weekday", firstWeekday, "unknown weekday")
				}
				first = d
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

			return writeOut(cmd, app, map[string]any{"data": monthGrid(year, month, first, bounds, app.loc)})
		},
	}

	cmd.Flags().StringVar(&firstWeekday, "first-weekday", "", "First column of the grid (overrides picker.first_weekday)")
	cmd.Flags().StringVar(&minS, "min", "", "Earliest selectable value (overrides picker.min)")
	cmd.Flags().StringVar(&maxS, "max", "", "Latest selectable value (overrides picker.max)")

	return cmd
}

func monthGrid(year int, month time.Month, first time.Weekday, bounds picker.Bounds, loc *time.Location) gridResult {
	grid := picker.MonthGrid(year, month, loc)
	header := picker.WeekdayHeader(first)

	res := gridResult{
		Year:        year,
		Month:       int(month),
		MonthName:   month.String(),
		DaysInMonth: len(grid),
		Weekdays:    header[:],
		Days:        make([]gridDay, 0, len(grid)),
		Weeks:       [][7]int{},
	}
	for _, d := range grid {
		res.Days = append(res.Days, gridDay{
			Date:       d.Format(time.DateOnly),
			Weekday:    d.Weekday().String(),
			Selectable: bounds.ContainsDay(d),
		})
	}
	for _, w := range picker.Weeks(grid, first) {
		var row [7]int
		for i, d := range w {
			if !d.IsZero() {
				row[i] = d.Day()
			}
		}
		res.Weeks = append(res.Weeks, row)
	}
	return res
}
