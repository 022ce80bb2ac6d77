package app

import (
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Log formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Document DocumentConfig    `yaml:"document"`
	View     ViewConfig        `yaml:"view"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.View.Validate()
}

// ApplicationConfig holds logging configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
	// LogFile redirects logs away from the terminal. The viewer discards
	// logs when it is empty.
	LogFile string `yaml:"log_file"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In(slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError)),
		validation.Field(&c.LogFormat, validation.Required, validation.In(LogFormatJSON, LogFormatText)),
	)
}

// DocumentConfig names the post document to open.
type DocumentConfig struct {
	Path string `yaml:"path"`
}

// ViewConfig holds terminal viewer options.
type ViewConfig struct {
	ShowLeafNums bool          `yaml:"show_leaf_nums"`
	ShowStatus   bool          `yaml:"show_status"`
	Mouse        bool          `yaml:"mouse"`
	AltScreen    bool          `yaml:"alt_screen"`
	ReloadDelay  time.Duration `yaml:"reload_delay"`
}

// Validate validates the viewer configuration.
func (c *ViewConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ReloadDelay, validation.Min(time.Duration(0)), validation.Max(10*time.Second)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatText,
		},
		View: ViewConfig{
			ShowLeafNums: true,
			ShowStatus:   true,
			Mouse:        true,
			AltScreen:    true,
			ReloadDelay:  100 * time.Millisecond,
		},
	}
}
