// Package config loads the settings of the wuidemo program.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"wuikit"
)

// Config holds the demo's settings.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Log    LogConfig    `mapstructure:"log"`
}

// WindowConfig describes the borderless demo window. Colors are #rrggbb or
// #rgb strings.
type WindowConfig struct {
	Title           string `mapstructure:"title"`
	X               int    `mapstructure:"x"`
	Y               int    `mapstructure:"y"`
	Width           int    `mapstructure:"width"`
	Height          int    `mapstructure:"height"`
	TitleBarHeight  int    `mapstructure:"title_bar_height"`
	Background      string `mapstructure:"background"`
	TitleBar        string `mapstructure:"title_bar"`
	PanelFill       string `mapstructure:"panel_fill"`
	BorderColor     string `mapstructure:"border_color"`
	BorderThickness int    `mapstructure:"border_thickness"`
	CornerRadius    int    `mapstructure:"corner_radius"`
}

// LogConfig selects level, format and an optional rotated log file.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Colors are the parsed color settings.
type Colors struct {
	Background  wuikit.Color
	TitleBar    wuikit.Color
	PanelFill   wuikit.Color
	BorderColor wuikit.Color
}

const envPrefix = "WUIDEMO"

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "wuikit demo")
	v.SetDefault("window.x", 200)
	v.SetDefault("window.y", 150)
	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 560)
	v.SetDefault("window.title_bar_height", 32)
	v.SetDefault("window.background", "#f0f0f0")
	v.SetDefault("window.title_bar", "#2b579a")
	v.SetDefault("window.panel_fill", "#ffffff")
	v.SetDefault("window.border_color", "#2b579a")
	v.SetDefault("window.border_thickness", 2)
	v.SetDefault("window.corner_radius", 16)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
}

// Load reads configuration from path and the environment. Env var overrides
// use the prefix WUIDEMO_, e.g. WUIDEMO_WINDOW_WIDTH. If path is empty, a
// config.toml in the user config directory is read if present. A path that
// does not exist is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wuidemo"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
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

// Validate checks sizes and colors.
func (c Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", w.Width, w.Height)
	}
	if w.TitleBarHeight < 0 || w.TitleBarHeight >= w.Height {
		return fmt.Errorf("config: title bar height %d does not fit window height %d", w.TitleBarHeight, w.Height)
	}
	_, err := c.Colors()
	return err
}

// Colors parses all color settings.
func (c Config) Colors() (Colors, error) {
	var colors Colors
	for _, f := range []struct {
		key  string
		text string
		dst  *wuikit.Color
	}{
		{"window.background", c.Window.Background, &colors.Background},
		{"window.title_bar", c.Window.TitleBar, &colors.TitleBar},
		{"window.panel_fill", c.Window.PanelFill, &colors.PanelFill},
		{"window.border_color", c.Window.BorderColor, &colors.BorderColor},
	} {
		color, err := wuikit.ParseColor(f.text)
		if err != nil {
			return Colors{}, fmt.Errorf("config: %s: %w", f.key, err)
		}
		*f.dst = color
	}
	return colors, nil
}
