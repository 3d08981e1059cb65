// Command electrons runs an idle-clicker session on the console.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"electrons/internal/clock"
	"electrons/internal/commands"
	"electrons/internal/config"
	"electrons/internal/service"
)

func main() {
	configPath := flag.String("config", "", "roster YAML file (built-in roster when empty)")
	tick := flag.Duration("tick", time.Second, "passive accrual interval")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("config", "err", err)
			os.Exit(1)
		}
	}

	svc, err := service.NewGameService(cfg, clock.NewMonotonic(clock.RealClock{}), logger)
	if err != nil {
		logger.Error("start session", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go settleLoop(ctx, svc, *tick, logger)

	logger.Info("session started", "generators", len(cfg.Generators), "upgrades", len(cfg.Upgrades))
	if err := runConsole(ctx, svc, os.Stdin, os.Stdout); err != nil {
		logger.Error("console", "err", err)
		os.Exit(1)
	}
}

func settleLoop(ctx context.Context, svc *service.GameService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.Execute(&commands.Settle{ID: commands.NewID()}); err != nil {
				logger.Error("settle", "err", err)
			}
		}
	}
}
