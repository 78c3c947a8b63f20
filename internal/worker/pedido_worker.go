package worker

// pedido_worker.go
// Processes order-email jobs from QueuePedidos.
// Sends a plain-text copy of the restock order to the distributor via SMTP,
// with exponential backoff (max 3 attempts) before giving up to the DLQ.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/DrouetDanilo/Inventia/internal/infra"
)

// PedidoJobPayload is the job envelope sent to QueuePedidos.
type PedidoJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

const maxPedidoAttempts = 3

// PedidoWorker sends order copies to distributor emails.
type PedidoWorker struct {
	mailer *infra.Mailer
	rdb    *redis.Client
}

func NewPedidoWorker(mailer *infra.Mailer, rdb *redis.Client) *PedidoWorker {
	return &PedidoWorker{mailer: mailer, rdb: rdb}
}

// Process sends the order email, retrying with exponential backoff.
// Jobs that still fail after the last attempt go to the DLQ.
func (w *PedidoWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload PedidoJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("pedido_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("pedido_worker: empty to_email — skipping")
		return
	}

	err := withRetry(ctx, maxPedidoAttempts, func(attempt int) error {
		if err := w.mailer.SendPedido(payload.ToEmail, payload.Subject, payload.Body); err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("to", payload.ToEmail).
				Msg("pedido_worker: send attempt failed, retrying")
			return err
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("pedido_worker: failed after all retries")
		SendToDLQ(ctx, w.rdb, QueuePedidos, "pedido_email", raw, err.Error(), maxPedidoAttempts)
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("pedido_worker: copia del pedido enviada")
}

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
