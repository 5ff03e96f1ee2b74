package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cliphud/internal/clip"
	"go.klb.dev/cliphud/internal/eventloop"
	"go.klb.dev/cliphud/internal/hud"
	"go.klb.dev/cliphud/internal/overlay"
)

const appID = "dev.klb.cliphud"

func newRunCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Watch the clipboard and show copied text in the overlay",
		Long: `Starts the HUD. Text already on the clipboard at launch is not shown; every
later copy is displayed for --hud-duration, and a further copy while the overlay
is up restarts the countdown.

Precedence (lowest → highest): defaults → config file → CLIPHUD_* env vars → flags`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runHUD(v) },
	}

	addHUDFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlags(cmd)

	return cmd
}

func runHUD(v *viper.Viper) error {
	setupLogging(v)

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	source, err := clip.New()
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	defer source.Close()

	a := app.NewWithID(appID)
	win, err := overlay.New(a, cfg.Style, strings.TrimSpace(cfg.Prefix))
	if err != nil {
		return fmt.Errorf("overlay: %w", err)
	}

	loop := eventloop.New(0)
	state := hud.NewState(source, win)
	lifecycle := hud.NewLifecycle(state, overlay.Screens{}, eventloop.NewScheduler(loop), hud.LifecycleConfig{
		Policy:   cfg.Policy,
		Duration: cfg.HUDDuration,
		Prefix:   cfg.Prefix,
	})
	poller := hud.NewPoller(state, source, lifecycle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("event loop stopped", "err", err)
		}
		slog.Info("shutting down")
		lifecycle.Close()
		fyne.Do(a.Quit)
	}()
	loop.Every(ctx, cfg.PollInterval, func() { poller.Poll() })

	slog.Info("cliphud started",
		"version", Version,
		"clipboard", source.Name(),
		"poll_interval", cfg.PollInterval,
		"hud_duration", cfg.HUDDuration,
		"max_width", cfg.Policy.MaxWidth,
		"max_lines", cfg.Policy.MaxLines,
	)

	// fyne owns the main thread until Quit.
	a.Run()
	stop()
	<-loop.Done()
	return nil
}
