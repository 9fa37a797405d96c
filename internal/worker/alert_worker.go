package worker

// Processes notification jobs from QueueAlert: low stock and overdue rentals.
// All alerts go to the configured operations email.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eder5on/Estoque/internal/infra"

	"github.com/rs/zerolog/log"
)

// LowStockAlertPayload announces that available stock of a product at a
// location fell below its minimum.
type LowStockAlertPayload struct {
	ProductID  string `json:"product_id"`
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	LocationID string `json:"location_id"`
	Available  int    `json:"available"`
	Minimum    int    `json:"minimum"`
}

// OverdueAlertPayload announces a rental that passed its expected return date.
type OverdueAlertPayload struct {
	RentalID     string `json:"rental_id"`
	CustomerName string `json:"customer_name"`
	ExpectedDate string `json:"expected_date"`
}

type AlertWorker struct {
	mailer  *infra.Mailer
	cb      *infra.CircuitBreaker
	alertTo string
}

func NewAlertWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, alertTo string) *AlertWorker {
	return &AlertWorker{mailer: mailer, cb: cb, alertTo: alertTo}
}

// Process dispatches by job type. Unknown types or a missing alert address
// are dropped with a log line, not retried.
func (w *AlertWorker) Process(ctx context.Context, jobType string, raw json.RawMessage) error {
	if w.alertTo == "" {
		log.Debug().Str("type", jobType).Msg("alert_worker: no alert email configured, dropping")
		return nil
	}

	var subject, body string
	switch jobType {
	case "low_stock":
		var p LowStockAlertPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			log.Error().Err(err).Msg("alert_worker: invalid low_stock payload")
			return nil
		}
		subject = fmt.Sprintf("Estoque baixo: %s (%s)", p.Name, p.SKU)
		body = fmt.Sprintf(
			"O produto %s (%s) está abaixo do estoque mínimo.\nDisponível: %d\nMínimo: %d\nLocal: %s",
			p.Name, p.SKU, p.Available, p.Minimum, p.LocationID)
	case "overdue_rental":
		var p OverdueAlertPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			log.Error().Err(err).Msg("alert_worker: invalid overdue_rental payload")
			return nil
		}
		subject = fmt.Sprintf("Locação em atraso: %s", p.CustomerName)
		body = fmt.Sprintf(
			"A locação %s de %s passou da data prevista de devolução (%s).",
			p.RentalID, p.CustomerName, p.ExpectedDate)
	default:
		log.Warn().Str("type", jobType).Msg("alert_worker: unknown job type")
		return nil
	}

	sendErr := withRetry(ctx, maxJobAttempts, func(attempt int) error {
		err := w.cb.Execute(func() error {
			return w.mailer.SendAlert(w.alertTo, subject, body)
		})
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt+1).Msg("alert_worker: send attempt failed")
		}
		return err
	})
	if sendErr != nil {
		return fmt.Errorf("alert_worker: send: %w", sendErr)
	}

	log.Info().Str("type", jobType).Str("to", w.alertTo).Msg("alert_worker: alert sent")
	return nil
}
