package consumer

import (
	"context"
	"encoding/json"

	"go-simpeg/internal/events"
	"go-simpeg/internal/quota"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveLifecycle menghitung ulang saldo kuota setiap ada perubahan
// catatan cuti. Aman diputar ulang karena Rebalance idempoten.
func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	quotaService quota.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_lifecycle")
	log.Info("leave lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.LeaveLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if _, err := quotaService.Recompute(ctx, event.EmployeeID, event.FiscalYear); err != nil {
			log.Error("recompute quota from leave event failed",
				zap.String("event_type", event.EventType),
				zap.String("leave_id", event.LeaveID),
				zap.String("employee_id", event.EmployeeID),
				zap.Int("fiscal_year", event.FiscalYear),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("quota recomputed from leave event",
			zap.String("event_type", event.EventType),
			zap.String("employee_id", event.EmployeeID),
			zap.Int("fiscal_year", event.FiscalYear),
		)
	}
}
