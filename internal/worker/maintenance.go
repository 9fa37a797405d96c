package worker

// Background goroutine that periodically marks active rentals past their
// expected return date as overdue and rescans inventory for products below
// their minimum stock. Alerts are deduplicated through Redis keys with a
// TTL so a persistent condition does not flood the operations inbox.

import (
	"context"
	"time"

	"github.com/eder5on/Estoque/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	maintenanceTickInterval = 15 * time.Minute
	alertDedupeTTL          = 24 * time.Hour
)

// MaintenanceCronConfig holds all dependencies for the maintenance goroutine.
type MaintenanceCronConfig struct {
	Rentals    repository.RentalRepository
	Inventory  repository.InventoryRepository
	Dispatcher *Dispatcher
	RDB        *redis.Client
}

// StartMaintenanceCron launches a background goroutine that ticks every 15m.
// It respects the context for graceful shutdown.
func StartMaintenanceCron(ctx context.Context, cfg MaintenanceCronConfig) {
	go func() {
		ticker := time.NewTicker(maintenanceTickInterval)
		defer ticker.Stop()

		log.Info().Msg("maintenance_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("maintenance_cron: shutting down")
				return
			case <-ticker.C:
				markOverdueRentals(ctx, cfg)
				rescanLowStock(ctx, cfg)
				reportDLQDepth(ctx, cfg.RDB)
			}
		}
	}()
}

func markOverdueRentals(ctx context.Context, cfg MaintenanceCronConfig) {
	now := time.Now()

	candidates, err := cfg.Rentals.OverdueCandidates(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("maintenance_cron: failed to query overdue candidates")
		return
	}
	if len(candidates) == 0 {
		return
	}

	updated, err := cfg.Rentals.MarkOverdue(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("maintenance_cron: failed to mark overdue rentals")
		return
	}
	log.Info().Int64("count", updated).Msg("maintenance_cron: rentals marked overdue")

	for i := range candidates {
		rental := &candidates[i]
		if !acquireAlertSlot(ctx, cfg.RDB, "alert:overdue:"+rental.ID.String()) {
			continue
		}
		payload := OverdueAlertPayload{RentalID: rental.ID.String()}
		if rental.Customer != nil {
			payload.CustomerName = rental.Customer.Name
		}
		if rental.ExpectedReturnDate != nil {
			payload.ExpectedDate = rental.ExpectedReturnDate.Format("2006-01-02")
		}
		if err := cfg.Dispatcher.EnqueueOverdueAlert(ctx, payload); err != nil {
			log.Warn().Err(err).Str("rental_id", rental.ID.String()).
				Msg("maintenance_cron: failed to enqueue overdue alert")
		}
	}
}

func rescanLowStock(ctx context.Context, cfg MaintenanceCronConfig) {
	records, err := cfg.Inventory.LowStock(ctx)
	if err != nil {
		log.Error().Err(err).Msg("maintenance_cron: failed to query low stock")
		return
	}

	for i := range records {
		rec := &records[i]
		if rec.Product == nil {
			continue
		}
		// The dispatcher itself dedupes low stock alerts per product+location.
		err := cfg.Dispatcher.EnqueueLowStockAlert(ctx, LowStockAlertPayload{
			ProductID:  rec.ProductID.String(),
			SKU:        rec.Product.SKU,
			Name:       rec.Product.Name,
			LocationID: rec.LocationID.String(),
			Available:  rec.Available(),
			Minimum:    rec.Product.MinimumStock,
		})
		if err != nil {
			log.Warn().Err(err).Str("sku", rec.Product.SKU).
				Msg("maintenance_cron: failed to enqueue low stock alert")
		}
	}
}

// reportDLQDepth logs how many dead jobs each queue has accumulated. The DLQ
// is terminal: entries wait for manual inspection, this keeps them visible.
func reportDLQDepth(ctx context.Context, rdb *redis.Client) {
	for _, queue := range []string{QueueReceipt, QueueAlert} {
		depth, err := DLQLength(ctx, rdb, queue)
		if err != nil {
			log.Warn().Err(err).Str("queue", queue).Msg("maintenance_cron: dlq length check failed")
			continue
		}
		if depth > 0 {
			log.Warn().Str("queue", queue).Int64("depth", depth).
				Msg("maintenance_cron: dead letter queue has pending entries")
		}
	}
}

// acquireAlertSlot returns true when no alert for key was sent within the
// dedupe window. SETNX with TTL keeps it race-free across instances.
func acquireAlertSlot(ctx context.Context, rdb *redis.Client, key string) bool {
	ok, err := rdb.SetNX(ctx, key, 1, alertDedupeTTL).Result()
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("maintenance_cron: dedupe check failed")
		return false
	}
	return ok
}
