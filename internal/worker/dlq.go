package worker

// Pedido jobs that exhaust their attempts land on a dead letter list,
// one per source queue (dlq:jobs:pedidos), for manual inspection with
// redis-cli. Nothing in the app reads them back.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DLQEntry preserves the failed job plus enough context to replay it by hand.
type DLQEntry struct {
	OriginalQueue string          `json:"original_queue"`
	JobType       string          `json:"job_type"`
	Payload       json.RawMessage `json:"payload"`
	Reason        string          `json:"reason"`
	FailedAt      string          `json:"failed_at"` // RFC 3339, UTC
	Attempts      int             `json:"attempts"`
}

// SendToDLQ parks a failed job on the dead letter list. Best effort: a
// failure here is logged and the job is lost.
func SendToDLQ(ctx context.Context, rdb *redis.Client, queue, jobType string, payload json.RawMessage, reason string, attempts int) {
	data, err := json.Marshal(DLQEntry{
		OriginalQueue: queue,
		JobType:       jobType,
		Payload:       payload,
		Reason:        reason,
		FailedAt:      time.Now().UTC().Format(time.RFC3339),
		Attempts:      attempts,
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: no se pudo serializar la entrada")
		return
	}

	clave := DLQPrefix + queue
	if err := rdb.LPush(ctx, clave, data).Err(); err != nil {
		log.Error().Err(err).Str("dlq_key", clave).Msg("dlq: no se pudo encolar la entrada")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("job_type", jobType).
		Str("reason", reason).
		Int("attempts", attempts).
		Msg("dlq: job movido a la cola de fallidos")
}

// DLQLength reports how many entries wait on a queue's dead letter list.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
