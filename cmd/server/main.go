package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eder5on/Estoque/internal/config"
	"github.com/eder5on/Estoque/internal/infra"
	"github.com/eder5on/Estoque/internal/repository"
	"github.com/eder5on/Estoque/internal/router"
	"github.com/eder5on/Estoque/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Background pool for async tasks (receipt PDF + email, stock alerts).
	// Worker handlers are wired here (composition root) so the pool has
	// full access to all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	dispatcher := worker.NewDispatcher(rdb)
	saleRepo := repository.NewSaleRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	handlers := worker.Handlers{
		Receipt: worker.NewReceiptWorker(saleRepo, mailer, smtpCB, cfg.ReceiptStoragePath),
		Alert:   worker.NewAlertWorker(mailer, smtpCB, cfg.AlertEmail),
	}
	worker.StartWorkerPool(ctx, rdb, handlers, cfg.WorkerPoolSize)

	// Periodic sweep: overdue rentals + low-stock rescan.
	worker.StartMaintenanceCron(ctx, worker.MaintenanceCronConfig{
		Rentals:    rentalRepo,
		Inventory:  inventoryRepo,
		Dispatcher: dispatcher,
		RDB:        rdb,
	})

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Estoque API listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
