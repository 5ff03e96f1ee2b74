package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cliphud/internal/hud"
	"go.klb.dev/cliphud/internal/logging"
	"go.klb.dev/cliphud/internal/overlay"
	"go.klb.dev/cliphud/internal/truncate"
)

var errInvalidConfig = errors.New("invalid config")

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and CLIPHUD_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → CLIPHUD_* env vars
// (including those from the dotenv file) → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("cliphud")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/cliphud/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "cliphud"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("CLIPHUD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. With no path, a .env next to the
// executable is used if present.
func loadEnvFile(path string) error {
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil
		}
		path = filepath.Join(filepath.Dir(exe), ".env")
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-background", false, "run interactively: tinter logs + debug level")
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: debug when interactive, else info)")
}

// addConfigFlags adds --config and --env-file to a command.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
	cmd.Flags().String("env-file", "", "dotenv file with CLIPHUD_* variables (default: .env next to the executable)")
}

// addTruncateFlags adds the truncation policy flags.
func addTruncateFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-width", truncate.DefaultPolicy.MaxWidth, "maximum characters per line")
	cmd.Flags().Int("max-lines", truncate.DefaultPolicy.MaxLines, "maximum number of lines")
}

// addHUDFlags adds the timing and styling flags of the overlay.
func addHUDFlags(cmd *cobra.Command) {
	style := overlay.DefaultStyle()
	f := cmd.Flags()
	f.Duration("poll-interval", hud.DefaultPollInterval, "how often the clipboard is checked")
	f.Duration("hud-duration", hud.DefaultDuration, "how long the overlay stays up after the last copy")
	f.String("prefix", hud.DefaultPrefix, "text shown before the clipboard content")
	f.Float32("width", style.Width, "overlay width")
	f.Float32("height", style.Height, "overlay height")
	f.Float32("padding", style.Padding, "inset between overlay edge and text")
	f.Float32("font-size", style.FontSize, "text size")
	f.Float32("corner-radius", style.CornerRadius, "background corner radius")
	f.Float64("opacity", style.Opacity, "background opacity (0..1]")
	addTruncateFlags(cmd)
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	logging.Setup(logging.Options{
		Format:      v.GetString("log-format"),
		Level:       v.GetString("log-level"),
		Interactive: v.GetBool("no-background"),
	})
}

// config is the validated runtime configuration of the HUD.
type config struct {
	PollInterval time.Duration
	HUDDuration  time.Duration
	Prefix       string
	Policy       truncate.Policy
	Style        overlay.Style
}

func loadPolicy(v *viper.Viper) (truncate.Policy, error) {
	p := truncate.Policy{
		MaxWidth: v.GetInt("max-width"),
		MaxLines: v.GetInt("max-lines"),
	}
	if p.MaxWidth < 0 {
		return p, fmt.Errorf("%w: max-width must be >= 0, got %d", errInvalidConfig, p.MaxWidth)
	}
	if p.MaxLines < 1 {
		return p, fmt.Errorf("%w: max-lines must be >= 1, got %d", errInvalidConfig, p.MaxLines)
	}
	return p, nil
}

func loadConfig(v *viper.Viper) (config, error) {
	policy, err := loadPolicy(v)
	if err != nil {
		return config{}, err
	}

	cfg := config{
		PollInterval: v.GetDuration("poll-interval"),
		HUDDuration:  v.GetDuration("hud-duration"),
		Prefix:       v.GetString("prefix"),
		Policy:       policy,
		Style: overlay.Style{
			Width:        float32(v.GetFloat64("width")),
			Height:       float32(v.GetFloat64("height")),
			Padding:      float32(v.GetFloat64("padding")),
			FontSize:     float32(v.GetFloat64("font-size")),
			CornerRadius: float32(v.GetFloat64("corner-radius")),
			Opacity:      v.GetFloat64("opacity"),
		},
	}

	switch {
	case cfg.PollInterval <= 0:
		return config{}, fmt.Errorf("%w: poll-interval must be positive", errInvalidConfig)
	case cfg.HUDDuration <= 0:
		return config{}, fmt.Errorf("%w: hud-duration must be positive", errInvalidConfig)
	case cfg.Style.Width <= 0 || cfg.Style.Height <= 0:
		return config{}, fmt.Errorf("%w: width and height must be positive", errInvalidConfig)
	case cfg.Style.Opacity <= 0 || cfg.Style.Opacity > 1:
		return config{}, fmt.Errorf("%w: opacity must be in (0,1], got %g", errInvalidConfig, cfg.Style.Opacity)
	}
	return cfg, nil
}
