package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueReceipt = "jobs:receipt"
	QueueAlert   = "jobs:alert"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueReceipt pushes a sale receipt job (PDF render + email) to Redis.
func (d *Dispatcher) EnqueueReceipt(ctx context.Context, payload ReceiptJobPayload) error {
	return d.enqueue(ctx, QueueReceipt, "receipt", payload)
}

// EnqueueLowStockAlert pushes a low-stock notification job to Redis.
// Deduplicated per product+location within the alert TTL window so repeated
// movements under the minimum do not flood the queue.
func (d *Dispatcher) EnqueueLowStockAlert(ctx context.Context, payload LowStockAlertPayload) error {
	key := "alert:lowstock:" + payload.ProductID + ":" + payload.LocationID
	ok, err := d.rdb.SetNX(ctx, key, 1, alertDedupeTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return nil // alerted recently
	}
	return d.enqueue(ctx, QueueAlert, "low_stock", payload)
}

// EnqueueOverdueAlert pushes an overdue-rental notification job to Redis.
func (d *Dispatcher) EnqueueOverdueAlert(ctx context.Context, payload OverdueAlertPayload) error {
	return d.enqueue(ctx, QueueAlert, "overdue_rental", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Handlers groups the per-queue processors wired at startup.
type Handlers struct {
	Receipt *ReceiptWorker
	Alert   *AlertWorker
}

// StartWorkerPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers Handlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers Handlers, id int) {
	queues := []string{QueueReceipt, QueueAlert}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers Handlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var procErr error
	switch queue {
	case QueueReceipt:
		if handlers.Receipt != nil {
			procErr = handlers.Receipt.Process(ctx, job.Payload)
		}
	case QueueAlert:
		if handlers.Alert != nil {
			procErr = handlers.Alert.Process(ctx, job.Type, job.Payload)
		}
	default:
		log.Warn().Str("queue", queue).Msg("job from unknown queue")
		return
	}

	if procErr != nil {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, procErr.Error(), maxJobAttempts)
	}
}

const maxJobAttempts = 3

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
