package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-simpeg/internal/events"
	"go-simpeg/internal/quota"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle menyiapkan saldo kuota tahun berjalan begitu
// pegawai baru tercatat. Recompute idempoten, jadi event ganda aman.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	quotaService quota.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		year := time.Now().Year()
		if _, err := quotaService.Recompute(ctx, event.EmployeeID, year); err != nil {
			log.Error("provision initial quota failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Int("year", year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("initial quota provisioned from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.Int("year", year),
		)
	}
}
