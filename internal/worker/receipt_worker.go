package worker

// Processes receipt jobs from QueueReceipt: renders the sale receipt PDF and
// emails it to the customer. SMTP sends go through the circuit breaker so a
// downed relay fast-fails instead of stalling the pool.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eder5on/Estoque/internal/infra"
	"github.com/eder5on/Estoque/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReceiptJobPayload is the job envelope sent to QueueReceipt.
type ReceiptJobPayload struct {
	SaleID        string  `json:"sale_id"`
	CustomerEmail *string `json:"customer_email,omitempty"`
}

type ReceiptWorker struct {
	sales       repository.SaleRepository
	mailer      *infra.Mailer
	cb          *infra.CircuitBreaker
	storagePath string
}

func NewReceiptWorker(sales repository.SaleRepository, mailer *infra.Mailer, cb *infra.CircuitBreaker, storagePath string) *ReceiptWorker {
	return &ReceiptWorker{sales: sales, mailer: mailer, cb: cb, storagePath: storagePath}
}

// Process renders the PDF and, when the customer has an email, sends it with
// up to three attempts. The returned error, if any, sends the job to the DLQ.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}

	saleID, err := uuid.Parse(payload.SaleID)
	if err != nil {
		log.Error().Str("sale_id", payload.SaleID).Msg("receipt_worker: invalid sale_id")
		return nil
	}

	sale, err := w.sales.FindByID(ctx, saleID)
	if err != nil {
		return fmt.Errorf("receipt_worker: sale %s: %w", payload.SaleID, err)
	}

	pdfPath, err := infra.GenerateReceiptPDF(sale, w.storagePath)
	if err != nil {
		return fmt.Errorf("receipt_worker: render PDF: %w", err)
	}
	log.Info().Str("pdf", pdfPath).Str("sale_id", payload.SaleID).Msg("receipt_worker: PDF generated")

	to := ""
	if payload.CustomerEmail != nil {
		to = *payload.CustomerEmail
	} else if sale.Customer != nil && sale.Customer.Email != nil {
		to = *sale.Customer.Email
	}
	if to == "" {
		log.Debug().Str("sale_id", payload.SaleID).Msg("receipt_worker: no customer email, PDF stored only")
		return nil
	}

	subject := "Recibo de Venda — Estoque"
	body := fmt.Sprintf("Segue em anexo o recibo da sua compra.\nTotal: R$%s", sale.TotalAmount.StringFixed(2))

	sendErr := withRetry(ctx, maxJobAttempts, func(attempt int) error {
		err := w.cb.Execute(func() error {
			return w.mailer.SendReceipt(to, subject, body, pdfPath)
		})
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt+1).Str("to", to).
				Msg("receipt_worker: send attempt failed")
		}
		return err
	})
	if sendErr != nil {
		return fmt.Errorf("receipt_worker: send to %s: %w", to, sendErr)
	}

	log.Info().Str("to", to).Str("sale_id", payload.SaleID).Msg("receipt_worker: receipt sent")
	return nil
}
