package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wuikit"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "wuikit demo", c.Window.Title)
	assert.Equal(t, 640, c.Window.Width)
	assert.Equal(t, 16, c.Window.CornerRadius)
	assert.Equal(t, "info", c.Log.Level)

	colors, err := c.Colors()
	require.NoError(t, err)
	assert.Equal(t, wuikit.RGB(0x2b, 0x57, 0x9a), colors.TitleBar)
}

func TestFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "demo.toml", `
[window]
width = 800
corner_radius = 4
panel_fill = "#abc"

[log]
level = "debug"
file = "demo.log"
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, c.Window.Width)
	assert.Equal(t, 560, c.Window.Height)
	assert.Equal(t, 4, c.Window.CornerRadius)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "demo.log", c.Log.File)

	colors, err := c.Colors()
	require.NoError(t, err)
	assert.Equal(t, wuikit.RGB(0xaa, 0xbb, 0xcc), colors.PanelFill)
}

func TestYAMLFilesAreRead(t *testing.T) {
	path := writeConfig(t, "demo.yaml", "window:\n  title: from yaml\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from yaml", c.Window.Title)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "demo.toml", "[window]\nwidth = 800\n")
	t.Setenv("WUIDEMO_WINDOW_WIDTH", "1024")
	t.Setenv("WUIDEMO_LOG_LEVEL", "warn")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, c.Window.Width)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestMissingExplicitFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestInvalidColorIsReported(t *testing.T) {
	path := writeConfig(t, "demo.toml", "[window]\nborder_color = \"blue\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window.border_color")
}

func TestTitleBarMustFitWindow(t *testing.T) {
	path := writeConfig(t, "demo.toml", "[window]\nheight = 30\ntitle_bar_height = 30\n")
	_, err := Load(path)
	assert.Error(t, err)
}
