// Package main provides wuidemo, a borderless window showing the wuikit
// controls: a draggable title bar, a rounded panel, batch setters and the
// input dialogs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"wuikit"
	"wuikit/internal/config"
	"wuikit/internal/logging"
)

// Build information set via ldflags
var version = "dev"

type options struct {
	configPath string
	logLevel   string
	logFile    string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "wuidemo",
		Short:         "Show the wuikit demo window",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, closer, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()
			wuikit.SetLogger(logger)
			logger.Info().Str("version", version).Msg("starting demo")
			return runDemo(cfg, logger)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (TOML, YAML or JSON)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "trace, debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also write the log to this file, rotated by size")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "console or json")

	cmd.AddCommand(newConfigCmd(&opts), newVersionCmd())
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *opts)
			if err != nil {
				return err
			}
			printConfig(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wuidemo %s\n", version)
		},
	}
}

// loadConfig reads the config file and lets command line flags override the
// log settings.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	return cfg, nil
}

func newLogger(c config.LogConfig, out io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(c.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	lc := logging.DefaultConfig()
	lc.Level = level
	lc.File = c.File
	lc.Out = out
	if c.Format != "" {
		lc.Format = c.Format
	}
	return logging.New(lc)
}

func printConfig(w io.Writer, cfg config.Config) {
	win := cfg.Window
	fmt.Fprintf(w, "window.title            %s\n", win.Title)
	fmt.Fprintf(w, "window.bounds           %d %d %d %d\n", win.X, win.Y, win.Width, win.Height)
	fmt.Fprintf(w, "window.title_bar_height %d\n", win.TitleBarHeight)
	fmt.Fprintf(w, "window.background       %s\n", win.Background)
	fmt.Fprintf(w, "window.title_bar        %s\n", win.TitleBar)
	fmt.Fprintf(w, "window.panel_fill       %s\n", win.PanelFill)
	fmt.Fprintf(w, "window.border_color     %s\n", win.BorderColor)
	fmt.Fprintf(w, "window.border_thickness %d\n", win.BorderThickness)
	fmt.Fprintf(w, "window.corner_radius    %d\n", win.CornerRadius)
	fmt.Fprintf(w, "log.level               %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "log.format              %s\n", cfg.Log.Format)
	fmt.Fprintf(w, "log.file                %s\n", cfg.Log.File)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
