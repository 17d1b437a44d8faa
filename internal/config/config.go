// Package config loads toastkit settings from a TOML file and TOASTKIT_ env vars.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"toastkit/internal/toast"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Toast ToastConfig `mapstructure:"toast"`
	Log   LogConfig   `mapstructure:"log"`
	Trace TraceConfig `mapstructure:"trace"`
}

// ToastConfig holds the appearance applied to demo toasts.
type ToastConfig struct {
	Duration      time.Duration `mapstructure:"duration"`
	Layout        string        `mapstructure:"layout"`
	Background    string        `mapstructure:"background"`
	TitleColor    string        `mapstructure:"title_color"`
	SubtitleColor string        `mapstructure:"subtitle_color"`
	Bold          bool          `mapstructure:"bold"`
	Italic        bool          `mapstructure:"italic"`
}

// LogConfig holds logging settings. An empty File discards logs.
type LogConfig struct {
	File  string `mapstructure:"file" toml:"file"`
	Level string `mapstructure:"level" toml:"level"`
}

// TraceConfig holds OTLP settings. An empty Endpoint disables tracing.
type TraceConfig struct {
	Endpoint    string `mapstructure:"endpoint" toml:"endpoint"`
	ServiceName string `mapstructure:"service_name" toml:"service_name"`
}

// Path returns the config file location: TOASTKIT_CONFIG if set, otherwise
// ~/.config/toastkit/config.toml.
func Path() string {
	if p := os.Getenv("TOASTKIT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "toastkit", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix TOASTKIT_.
// A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("toast.duration", toast.DefaultDuration)
	v.SetDefault("toast.layout", toast.TitleAndSubtitle.String())
	v.SetDefault("toast.background", string(toast.DefaultBackground))
	v.SetDefault("toast.title_color", string(toast.PrimaryTextColor))
	v.SetDefault("toast.subtitle_color", string(toast.SecondaryTextColor))
	v.SetDefault("toast.bold", toast.DefaultFont.Bold)
	v.SetDefault("toast.italic", toast.DefaultFont.Italic)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("trace.endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	v.SetDefault("trace.service_name", "toastkit")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("TOASTKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
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

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, ok := toast.ParseLayoutStyle(c.Toast.Layout); !ok {
		return fmt.Errorf("toast.layout: unknown layout %q", c.Toast.Layout)
	}
	if c.Toast.Duration < 0 {
		return fmt.Errorf("toast.duration: must not be negative, got %s", c.Toast.Duration)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// ToastLayout returns the configured layout style.
func (c Config) ToastLayout() toast.LayoutStyle {
	s, _ := toast.ParseLayoutStyle(c.Toast.Layout)
	return s
}

// LogLevel returns the configured slog level, defaulting to info.
func (c Config) LogLevel() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// Apply copies the configured appearance onto t.
func (c Config) Apply(t *toast.Toast) *toast.Toast {
	font := toast.Font{Bold: c.Toast.Bold, Italic: c.Toast.Italic}
	return t.
		WithDuration(c.Toast.Duration).
		WithLayout(c.ToastLayout()).
		WithBackground(lipgloss.Color(c.Toast.Background)).
		WithTextColors(lipgloss.Color(c.Toast.TitleColor), lipgloss.Color(c.Toast.SubtitleColor)).
		WithFont(font)
}

// Encode writes the effective configuration as TOML.
func (c Config) Encode(w io.Writer) error {
	out := file{
		Toast: fileToast{
			Duration:      c.Toast.Duration.String(),
			Layout:        c.Toast.Layout,
			Background:    c.Toast.Background,
			TitleColor:    c.Toast.TitleColor,
			SubtitleColor: c.Toast.SubtitleColor,
			Bold:          c.Toast.Bold,
			Italic:        c.Toast.Italic,
		},
		Log:   c.Log,
		Trace: c.Trace,
	}

	if err := toml.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// file mirrors Config with durations spelled the way they are written in TOML.
type file struct {
	Toast fileToast   `toml:"toast"`
	Log   LogConfig   `toml:"log"`
	Trace TraceConfig `toml:"trace"`
}

type fileToast struct {
	Duration      string `toml:"duration"`
	Layout        string `toml:"layout"`
	Background    string `toml:"background"`
	TitleColor    string `toml:"title_color"`
	SubtitleColor string `toml:"subtitle_color"`
	Bold          bool   `toml:"bold"`
	Italic        bool   `toml:"italic"`
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, err
	}
	return l, nil
}
