package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"railroute/pkg/config"
	"railroute/pkg/ledger"
	"railroute/pkg/logging"
	"railroute/pkg/rail"
)

// Serve assembles the application from config and runs the HTTP server
// until a shutdown signal arrives. Shared by cmd/server and the CLI
// serve verb.
func Serve(cfg *config.App) error {
	logger := logging.Setup(cfg.Log)

	fiberApp := New(Deps{
		Config:    cfg,
		Logger:    logger,
		Catalog:   rail.NewCatalog(),
		Ledger:    ledger.New(),
		Authorize: KeyAuthorizer(cfg.Auth.ApiKey),
	})

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received, draining connections")
		if err := fiberApp.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
	)
	return fiberApp.Listen(addr)
}
