// Package config loads dtpick settings from a TOML file and DTPICK_ env vars.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dtpick/internal/debounce"
	"dtpick/internal/picker"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DataDir string       `mapstructure:"data_dir"`
	Picker  PickerConfig `mapstructure:"picker"`
	UI      UIConfig     `mapstructure:"ui"`
}

// PickerConfig holds widget defaults. Min and Max use the same formats as
// --start and may be empty.
type PickerConfig struct {
	HourStep     int           `mapstructure:"hour_step"`
	MinuteStep   int           `mapstructure:"minute_step"`
	Debounce     time.Duration `mapstructure:"debounce"`
	FirstWeekday string        `mapstructure:"first_weekday"`
	Timezone     string        `mapstructure:"timezone"`
	Min          string        `mapstructure:"min"`
	Max          string        `mapstructure:"max"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Debug bool   `mapstructure:"debug"`
	Label string `mapstructure:"label"`
}

// Load reads configuration from path (or the default location when empty) and
// the environment. A missing default file is fine; a missing explicit one is not.
//
// Env var overrides use prefix DTPICK_, e.g. DTPICK_PICKER_MINUTE_STEP=15.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("picker.hour_step", 1)
	v.SetDefault("picker.minute_step", 1)
	v.SetDefault("picker.debounce", debounce.DefaultDelay.String())
	v.SetDefault("picker.first_weekday", "sunday")
	v.SetDefault("picker.timezone", "Local")
	v.SetDefault("picker.min", "")
	v.SetDefault("picker.max", "")
	v.SetDefault("ui.debug", false)
	v.SetDefault("ui.label", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("DTPICK_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultConfigDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DTPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate checks that the settings can drive a picker.
func (c Config) Validate() error {
	if c.Picker.HourStep < 1 {
		return fmt.Errorf("picker.hour_step must be at least 1, got %d", c.Picker.HourStep)
	}
	if c.Picker.MinuteStep < 1 {
		return fmt.Errorf("picker.minute_step must be at least 1, got %d", c.Picker.MinuteStep)
	}
	if c.Picker.Debounce <= 0 {
		return fmt.Errorf("picker.debounce must be positive, got %s", c.Picker.Debounce)
	}
	if _, ok := picker.ParseWeekday(c.Picker.FirstWeekday); !ok {
		return fmt.Errorf("picker.first_weekday: unknown weekday %q", c.Picker.FirstWeekday)
	}
	loc, err := c.Location()
	if err != nil {
		return err
	}
	if _, err := c.Bounds(loc); err != nil {
		return err
	}
	return nil
}

// Location resolves picker.timezone.
func (c Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Picker.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("picker.timezone: %w", err)
	}
	return loc, nil
}

// Weekday resolves picker.first_weekday, falling back to Sunday.
func (c Config) Weekday() time.Weekday {
	d, _ := picker.ParseWeekday(c.Picker.FirstWeekday)
	return d
}

// Bounds parses picker.min and picker.max in loc.
func (c Config) Bounds(loc *time.Location) (picker.Bounds, error) {
	return ParseBounds(c.Picker.Min, c.Picker.Max, loc)
}

// ParseBounds parses optional min and max values and checks their order.
func ParseBounds(minS, maxS string, loc *time.Location) (picker.Bounds, error) {
	var b picker.Bounds
	var err error
	if strings.TrimSpace(minS) != "" {
		if b.Min, err = picker.ParseValue(minS, loc); err != nil {
			return picker.Bounds{}, fmt.Errorf("min: %w", err)
		}
	}
	if strings.TrimSpace(maxS) != "" {
		if b.Max, err = picker.ParseValue(maxS, loc); err != nil {
			return picker.Bounds{}, fmt.Errorf("max: %w", err)
		}
	}
	if !b.Valid() {
		return picker.Bounds{}, fmt.Errorf("max %s is before min %s", b.Max.Format(time.RFC3339), b.Min.Format(time.RFC3339))
	}
	return b, nil
}

func defaultConfigDir() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "dtpick")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "dtpick")
}

func defaultDataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "dtpick")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "dtpick")
}
