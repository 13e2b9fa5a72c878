package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/rangepick/internal/dates"
	"github.com/jask/rangepick/internal/position"
	"github.com/jask/rangepick/internal/selection"
)

// DefaultMonthFormat is the Go layout for calendar month titles.
const DefaultMonthFormat = "January 2006"

const visibleMonthLayout = "2006-01"

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Picker   PickerConfig
	Rules    RulesConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings for the range history.
type DatabaseConfig struct {
	Path string
}

// PickerConfig mirrors the picker's behavioural switches.
type PickerConfig struct {
	MinimumNights            int    `mapstructure:"minimum_nights"`
	KeepOpenOnDateSelect     bool   `mapstructure:"keep_open_on_date_select"`
	ReopenPickerOnClearDates bool   `mapstructure:"reopen_picker_on_clear_dates"`
	AnchorDirection          string `mapstructure:"anchor_direction"`
	HorizontalMargin         int    `mapstructure:"horizontal_margin"`
	FullScreenPortal         bool   `mapstructure:"full_screen_portal"`
	NumberOfMonths           int    `mapstructure:"number_of_months"`
	DisplayFormat            string `mapstructure:"display_format"`
	Disabled                 bool
	WithPortal               bool   `mapstructure:"with_portal"`
	ShowClearDates           bool   `mapstructure:"show_clear_dates"`
	Orientation              string `mapstructure:"orientation"`
	MonthFormat              string `mapstructure:"month_format"`
	// InitialVisibleMonth is "" or YYYY-MM.
	InitialVisibleMonth string `mapstructure:"initial_visible_month"`
	InitialFocus        string `mapstructure:"initial_focus"`
}

// RulesConfig describes which days can never be picked.
type RulesConfig struct {
	HorizonDays     int      `mapstructure:"horizon_days"`
	BlockedWeekdays []string `mapstructure:"blocked_weekdays"`
	BlockedRRule    string   `mapstructure:"blocked_rrule"`
	BlockedICS      string   `mapstructure:"blocked_ics"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Timezone string
}

// Load reads configuration from file and env. Env var overrides use prefix RANGEPICK_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("RANGEPICK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(Path()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RANGEPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present; -init-config creates it
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "rangepick", "history.db"))
	v.SetDefault("picker.minimum_nights", 1)
	v.SetDefault("picker.keep_open_on_date_select", false)
	v.SetDefault("picker.reopen_picker_on_clear_dates", false)
	v.SetDefault("picker.anchor_direction", string(position.AnchorLeft))
	v.SetDefault("picker.horizontal_margin", 0)
	v.SetDefault("picker.full_screen_portal", false)
	v.SetDefault("picker.number_of_months", 2)
	v.SetDefault("picker.display_format", dates.DefaultDisplayFormat)
	v.SetDefault("picker.disabled", false)
	v.SetDefault("picker.with_portal", false)
	v.SetDefault("picker.show_clear_dates", true)
	v.SetDefault("picker.orientation", string(position.Horizontal))
	v.SetDefault("picker.month_format", DefaultMonthFormat)
	v.SetDefault("picker.initial_visible_month", "")
	v.SetDefault("picker.initial_focus", "")
	v.SetDefault("rules.horizon_days", 0)
	v.SetDefault("rules.blocked_weekdays", []string{})
	v.SetDefault("rules.blocked_rrule", "")
	v.SetDefault("rules.blocked_ics", "")
	v.SetDefault("ui.timezone", "Local")
}

// Validate rejects settings the picker cannot honour.
func (c Config) Validate() error {
	if c.Picker.MinimumNights < 0 {
		return fmt.Errorf("picker.minimum_nights must be >= 0 (got %d)", c.Picker.MinimumNights)
	}
	if c.Picker.HorizontalMargin < 0 {
		return fmt.Errorf("picker.horizontal_margin must be >= 0 (got %d)", c.Picker.HorizontalMargin)
	}
	if c.Picker.NumberOfMonths < 1 || c.Picker.NumberOfMonths > 3 {
		return fmt.Errorf("picker.number_of_months must be between 1 and 3 (got %d)", c.Picker.NumberOfMonths)
	}
	if _, err := position.ParseAnchorDirection(c.Picker.AnchorDirection); err != nil {
		return fmt.Errorf("picker.anchor_direction: %w", err)
	}
	if _, err := position.ParseOrientation(c.Picker.Orientation); err != nil {
		return fmt.Errorf("picker.orientation: %w", err)
	}
	if strings.TrimSpace(c.Picker.MonthFormat) == "" {
		return errors.New("picker.month_format must not be empty")
	}
	if _, err := c.Picker.VisibleMonth(); err != nil {
		return err
	}
	if _, err := selection.ParseFocusTarget(c.Picker.InitialFocus); err != nil {
		return fmt.Errorf("picker.initial_focus: %w", err)
	}
	if c.Rules.HorizonDays < 0 {
		return fmt.Errorf("rules.horizon_days must be >= 0 (got %d)", c.Rules.HorizonDays)
	}
	if _, err := c.Rules.Weekdays(); err != nil {
		return err
	}
	return nil
}

// VisibleMonth parses InitialVisibleMonth. The zero Date means "follow the
// selection or today".
func (p PickerConfig) VisibleMonth() (dates.Date, error) {
	raw := strings.TrimSpace(p.InitialVisibleMonth)
	if raw == "" {
		return dates.Date{}, nil
	}
	t, err := time.Parse(visibleMonthLayout, raw)
	if err != nil {
		return dates.Date{}, fmt.Errorf("picker.initial_visible_month: want YYYY-MM, got %q", raw)
	}
	return dates.FromTime(t), nil
}

// Weekdays parses BlockedWeekdays ("sat", "Sunday", ...).
func (r RulesConfig) Weekdays() ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(r.BlockedWeekdays))
	for _, raw := range r.BlockedWeekdays {
		name := strings.ToLower(strings.TrimSpace(raw))
		found := false
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			full := strings.ToLower(wd.String())
			if name == full || name == full[:3] {
				out = append(out, wd)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("rules.blocked_weekdays: unknown weekday %q", raw)
		}
	}
	return out, nil
}

// Location resolves UI.Timezone, falling back to time.Local.
func (u UIConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(u.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// Path is the config file location: $RANGEPICK_CONFIG or
// ~/.config/rangepick/config.toml.
func Path() string {
	if p := os.Getenv("RANGEPICK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "rangepick", "config.toml")
}

// Save writes the provided config to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("picker.minimum_nights", cfg.Picker.MinimumNights)
	v.Set("picker.keep_open_on_date_select", cfg.Picker.KeepOpenOnDateSelect)
	v.Set("picker.reopen_picker_on_clear_dates", cfg.Picker.ReopenPickerOnClearDates)
	v.Set("picker.anchor_direction", cfg.Picker.AnchorDirection)
	v.Set("picker.horizontal_margin", cfg.Picker.HorizontalMargin)
	v.Set("picker.full_screen_portal", cfg.Picker.FullScreenPortal)
	v.Set("picker.number_of_months", cfg.Picker.NumberOfMonths)
	v.Set("picker.display_format", cfg.Picker.DisplayFormat)
	v.Set("picker.disabled", cfg.Picker.Disabled)
	v.Set("picker.with_portal", cfg.Picker.WithPortal)
	v.Set("picker.show_clear_dates", cfg.Picker.ShowClearDates)
	v.Set("picker.orientation", cfg.Picker.Orientation)
	v.Set("picker.month_format", cfg.Picker.MonthFormat)
	v.Set("picker.initial_visible_month", cfg.Picker.InitialVisibleMonth)
	v.Set("picker.initial_focus", cfg.Picker.InitialFocus)
	v.Set("rules.horizon_days", cfg.Rules.HorizonDays)
	v.Set("rules.blocked_weekdays", cfg.Rules.BlockedWeekdays)
	v.Set("rules.blocked_rrule", cfg.Rules.BlockedRRule)
	v.Set("rules.blocked_ics", cfg.Rules.BlockedICS)
	v.Set("ui.timezone", cfg.UI.Timezone)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
