// tipsplit splits a restaurant bill, tip included, from the terminal.
//
// Usage:
//
//	tipsplit [-min-split 1] [-max-split 10] [-slider-steps 5] [-currency $]
//	         [-log-file path] [-metrics-file path] [-verbose]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/tipsplit/internal/config"
	"github.com/mmynk/tipsplit/internal/display"
	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/service"
	"github.com/mmynk/tipsplit/internal/storage"
	"github.com/mmynk/tipsplit/internal/telemetry"
	"github.com/mmynk/tipsplit/pkg/logging"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tipsplit: %v\n", err)
		os.Exit(2)
	}

	logCloser, err := logging.SetupFile(cfg.LogFile, cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (falling back to stderr)\n", err)
		logCloser, _ = logging.SetupFile("stderr", cfg.Verbose)
	}
	defer logCloser.Close()

	if err := run(cfg); err != nil {
		slog.Error("tipsplit failed", "error", err)
		fmt.Fprintf(os.Stderr, "tipsplit: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	store := storage.NewMemoryStore()
	defer store.Close()

	recorder := telemetry.NewRecorder()
	svc := service.NewTipService(store, recorder)

	screen, err := display.New(display.Options{
		Range:       cfg.Split,
		SliderSteps: cfg.SliderSteps,
		Currency:    cfg.Currency,
		Observers:   []form.Observer{recorder.Observe},
	}, svc)
	if err != nil {
		return err
	}

	slog.Info("Screen starting",
		"min_split", cfg.Split.Min,
		"max_split", cfg.Split.Max,
		"slider_steps", cfg.SliderSteps,
	)

	_, runErr := tea.NewProgram(screen, tea.WithAltScreen()).Run()

	if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
		slog.Error("Failed to write metrics", "error", err)
	}
	if runErr != nil {
		return fmt.Errorf("ui: %w", runErr)
	}
	slog.Info("Screen closed")
	return nil
}
