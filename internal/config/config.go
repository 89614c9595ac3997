package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Views  ViewsConfig
	Source SourceConfig
	UI     UIConfig
	Styles StylesConfig
	Log    LogConfig
}

// ViewsConfig lists the tabs offered per device class.
type ViewsConfig struct {
	Desktop []string
	Mobile  []string
}

// SourceConfig points at the event feed loaded on startup.
type SourceConfig struct {
	ICS string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StopDayEventSummary bool   `mapstructure:"stop_day_event_summary"`
	WeekStartsOn        string `mapstructure:"week_starts_on"`
	Timezone            string
	DateFormat          string `mapstructure:"date_format"`
	CellWidth           int    `mapstructure:"cell_width"`
	MaxEventsPerCell    int    `mapstructure:"max_events_per_cell"`
	AddEventTitle       string `mapstructure:"add_event_title"`
}

// StylesConfig overrides colours of individual elements. Empty means default.
type StylesConfig struct {
	Tabs     string
	AddEvent string `mapstructure:"add_event"`
	Prev     string
	Next     string
	Event    string
}

// LogConfig controls the debug log file.
type LogConfig struct {
	File string
}

const (
	defaultCellWidth        = 8
	defaultMaxEventsPerCell = 2
)

// Load reads configuration from file and env. Env var overrides use prefix JASKCAL_.
func Load() (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("views.desktop", []string{"day", "week", "month"})
	v.SetDefault("views.mobile", []string{"day"})
	v.SetDefault("source.ics", "")
	v.SetDefault("ui.stop_day_event_summary", false)
	v.SetDefault("ui.week_starts_on", "monday")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.date_format", "Mon 02 Jan 2006")
	v.SetDefault("ui.cell_width", defaultCellWidth)
	v.SetDefault("ui.max_events_per_cell", defaultMaxEventsPerCell)
	v.SetDefault("ui.add_event_title", "Add Event")
	v.SetDefault("styles.tabs", "")
	v.SetDefault("styles.add_event", "")
	v.SetDefault("styles.prev", "")
	v.SetDefault("styles.next", "")
	v.SetDefault("styles.event", "")
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "jaskcal.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKCAL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskcal"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKCAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path that does not exist surfaces as an fs error; treat both as "no file"
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Views.Desktop = splitList(c.Views.Desktop)
	c.Views.Mobile = splitList(c.Views.Mobile)
	if c.UI.CellWidth <= 0 {
		c.UI.CellWidth = defaultCellWidth
	}
	if c.UI.MaxEventsPerCell <= 0 {
		c.UI.MaxEventsPerCell = defaultMaxEventsPerCell
	}
	return c, nil
}

// Path is the file Save writes: $JASKCAL_CONFIG, or
// ~/.config/jaskcal/config.toml.
func Path() string {
	if p := os.Getenv("JASKCAL_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskcal", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("views.desktop", cfg.Views.Desktop)
	v.Set("views.mobile", cfg.Views.Mobile)
	v.Set("source.ics", cfg.Source.ICS)
	v.Set("ui.stop_day_event_summary", cfg.UI.StopDayEventSummary)
	v.Set("ui.week_starts_on", cfg.UI.WeekStartsOn)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.cell_width", cfg.UI.CellWidth)
	v.Set("ui.max_events_per_cell", cfg.UI.MaxEventsPerCell)
	v.Set("ui.add_event_title", cfg.UI.AddEventTitle)
	v.Set("styles.tabs", cfg.Styles.Tabs)
	v.Set("styles.add_event", cfg.Styles.AddEvent)
	v.Set("styles.prev", cfg.Styles.Prev)
	v.Set("styles.next", cfg.Styles.Next)
	v.Set("styles.event", cfg.Styles.Event)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// splitList lets env overrides such as JASKCAL_VIEWS_MOBILE="day,week" arrive
// as a single comma-separated element.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		out = append(out, strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' })...)
	}
	return out
}
