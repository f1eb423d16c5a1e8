package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskPaymentReminders sweeps bookings with outstanding balances.
	TaskPaymentReminders = "bookings:payment_reminders"
	// TaskLowStockScan flags inventory items at or under minimum stock.
	TaskLowStockScan = "inventory:low_stock_scan"
)

// PaymentRemindersPayload tunes the reminder sweep.
type PaymentRemindersPayload struct {
	// MinDaysOverdue skips bookings younger than this many days.
	MinDaysOverdue int `json:"min_days_overdue"`
}

// NewPaymentRemindersTask constructs the reminder sweep task.
func NewPaymentRemindersTask(minDaysOverdue int) (*asynq.Task, error) {
	data, err := json.Marshal(PaymentRemindersPayload{MinDaysOverdue: minDaysOverdue})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPaymentReminders, data), nil
}

// LowStockScanPayload is currently empty but kept for forward
// compatibility of queued tasks.
type LowStockScanPayload struct{}

// NewLowStockScanTask constructs the low stock scan task.
func NewLowStockScanTask() (*asynq.Task, error) {
	data, err := json.Marshal(LowStockScanPayload{})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockScan, data), nil
}
