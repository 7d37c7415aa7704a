package tui

import (
	"context"
	"log/slog"
	"time"

	"dtpick/internal/debounce"
	"dtpick/internal/picker"

	"cloudeng.io/logging/ctxlog"
)

// Options configure the pickers. The zero value is usable: no bounds, steps
// of one, the default quiet period and Sunday as first weekday.
type Options struct {
	Label        string
	Bounds       picker.Bounds
	HourStep     int
	MinuteStep   int
	Debounce     time.Duration
	FirstWeekday time.Weekday
	Debug        bool

	// Sink receives debounced entry messages. Without one, typed values only
	// apply on enter.
	Sink *Sink
	// Logger defaults to discarding.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return ctxlog.Logger(context.Background())
}

func (o Options) debounceDelay() time.Duration {
	if o.Debounce <= 0 {
		return debounce.DefaultDelay
	}
	return o.Debounce
}
