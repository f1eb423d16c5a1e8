package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/mabrur-erp/mabrur-erp/internal/bookings"
	"github.com/mabrur-erp/mabrur-erp/internal/dashboard"
	"github.com/mabrur-erp/mabrur-erp/internal/platform/money"
)

// PaymentRemindersJob sweeps bookings with an outstanding balance and
// logs a reminder line per booking for the back office to follow up.
type PaymentRemindersJob struct {
	Service *bookings.Service
	Logger  *slog.Logger
	clock   func() time.Time
}

// NewPaymentRemindersJob initialises the reminder sweep handler.
func NewPaymentRemindersJob(service *bookings.Service, logger *slog.Logger) *PaymentRemindersJob {
	return &PaymentRemindersJob{
		Service: service,
		Logger:  logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle executes the reminder sweep.
func (j *PaymentRemindersJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Service == nil {
		return errors.New("payment reminders: handler not configured")
	}
	var payload PaymentRemindersPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	logger := j.logger().With(slog.Int("min_days_overdue", payload.MinDaysOverdue))
	logger.Info("starting payment reminder sweep")

	outstanding, err := j.Service.ListOutstanding(ctx)
	if err != nil {
		logger.Error("sweep failed", slog.Any("error", err))
		return err
	}

	now := j.now()
	reminded := 0
	for _, b := range outstanding {
		overdue := dashboard.DaysOverdue(b.BookingDate, now)
		if overdue < payload.MinDaysOverdue {
			continue
		}
		reminded++
		logger.Warn("payment overdue",
			slog.Int64("booking_id", b.ID),
			slog.Int64("pilgrim_id", b.PilgrimID),
			slog.String("remaining", money.Display(b.RemainingAmount)),
			slog.Int("days_overdue", overdue),
		)
	}

	logger.Info("completed payment reminder sweep",
		slog.Int("outstanding", len(outstanding)),
		slog.Int("reminded", reminded),
	)
	return nil
}

func (j *PaymentRemindersJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskPaymentReminders))
	}
	return slog.Default().With(slog.String("job", TaskPaymentReminders))
}

func (j *PaymentRemindersJob) now() time.Time {
	if j.clock != nil {
		return j.clock()
	}
	return time.Now().UTC()
}
