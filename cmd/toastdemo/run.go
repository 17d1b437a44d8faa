package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"toastkit/internal/config"
	"toastkit/internal/demo"
	"toastkit/internal/toast"
	"toastkit/internal/trace"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type runFlags struct {
	title    string
	subtitle string
	duration time.Duration
	layout   string
}

func runCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("duration") {
				cfg.Toast.Duration = f.duration
			}
			if cmd.Flags().Changed("layout") {
				cfg.Toast.Layout = f.layout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, f)
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "", "Toast title")
	cmd.Flags().StringVar(&f.subtitle, "subtitle", "", "Toast subtitle")
	cmd.Flags().DurationVar(&f.duration, "duration", toast.DefaultDuration, "How long a toast stays shown")
	cmd.Flags().StringVar(&f.layout, "layout", toast.TitleAndSubtitle.String(), "Layout: title or title_and_subtitle")

	return cmd
}

func run(ctx context.Context, cfg config.Config, f runFlags) error {
	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	tp, err := trace.NewProvider(ctx, cfg.Trace.Endpoint, cfg.Trace.ServiceName)
	if err != nil {
		return err
	}
	opts := []toast.Option{toast.UseLogger(logger)}
	if tp != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				logger.Warn("trace shutdown", "err", err)
			}
		}()
		opts = append(opts, toast.UseObserver(trace.NewRecorder(tp)))
	}

	t := cfg.Apply(toast.New(opts...))
	m := demo.New(t, demo.Options{
		Title:    f.title,
		Subtitle: f.subtitle,
		Logger:   logger,
	})

	logger.Info("starting demo", "layout", cfg.Toast.Layout, "duration", cfg.Toast.Duration)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// openLogger logs to cfg.Log.File since the terminal belongs to the UI.
// Without a file, logs are discarded.
func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.Log.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := tea.LogToFile(cfg.Log.File, "toastdemo")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	return logger, func() { f.Close() }, nil
}
