package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ryobiguy/timesheet/internal/components"
	"github.com/ryobiguy/timesheet/internal/config"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		components.SetupLogger("local").Error("load config failed", "err", err)
		return err
	}
	logger := components.SetupLogger(cfg.Env)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		comps.Reprocessor.Run(ctx)
		logger.Info("reprocessor stopped")
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shutting down the servers")

	return nil
}
