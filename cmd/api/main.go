package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
	"github.com/nulln0ne/dexter-estimator/internal/config"
	"github.com/nulln0ne/dexter-estimator/internal/handler"
	"github.com/nulln0ne/dexter-estimator/internal/logging"
	"github.com/nulln0ne/dexter-estimator/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	app := fiber.New()
	logger := logging.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	logger.Info("exchange configured",
		"fee", cfg.Exchange.Fee(),
		"burn", cfg.Exchange.Burn(),
		"credits_subsidy", cfg.Exchange.CreditsSubsidy())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	quoteService := service.NewQuoteService(logger, cfg.Exchange)
	quoteHandler := handler.NewQuoteHandler(logger, quoteService)
	liquidityHandler := handler.NewLiquidityHandler(logger, quoteService)

	app.Get("/quote/xtz-to-token", quoteHandler.XtzToToken())
	app.Get("/quote/token-to-xtz", quoteHandler.TokenToXtz())
	app.Get("/quote/xtz-to-token/input", quoteHandler.XtzToTokenInput())
	app.Get("/quote/token-to-xtz/input", quoteHandler.TokenToXtzInput())
	app.Get("/liquidity/add", liquidityHandler.Add())
	app.Get("/liquidity/add/xtz-in", liquidityHandler.AddXtzIn())
	app.Get("/liquidity/remove", liquidityHandler.Remove())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return app.ShutdownWithContext(shutdownCtx)
}
