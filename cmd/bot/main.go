package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/api"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/bot"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/chart"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/config"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/schedule"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := internal.NewZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatalf("invalid timezone %q: %v", cfg.Timezone, err)
	}

	store, err := storage.NewMoodRepository(cfg.Backend, cfg.SQLitePath, cfg.PostgresDSN, loc, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}
	defer store.Close()

	renderer, err := chart.NewRenderer(cfg.ChartsDir, logger)
	if err != nil {
		logger.Fatalf("failed to init chart renderer: %v", err)
	}

	b, err := bot.New(cfg.BotToken, cfg.OwnerID, loc, store, renderer, logger)
	if err != nil {
		logger.Fatalf("failed to init bot: %v", err)
	}

	dispatcher := schedule.NewDispatcher(loc, store, renderer, b, cfg.OwnerID, logger)
	if err := dispatcher.RegisterWeeklyReport(cfg.WeeklyCron); err != nil {
		logger.Fatalf("failed to schedule weekly report: %v", err)
	}
	if err := dispatcher.RegisterMonthlyReport(cfg.MonthlyCron); err != nil {
		logger.Fatalf("failed to schedule monthly report: %v", err)
	}
	dispatcher.Start()

	go func() {
		router := api.NewRouter(store, loc, cfg.OpsToken, logger)
		logger.Infof("ops server listening on %s", cfg.OpsAddr)
		if err := router.Run(cfg.OpsAddr); err != nil {
			logger.Errorf("ops server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("bot started")
	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("bot stopped: %v", err)
	}

	// Let any scheduled report that is mid-flight finish before exiting.
	<-dispatcher.Stop().Done()
	logger.Infof("bot shut down")
}
