package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/mabrur-erp/mabrur-erp/internal/inventory"
)

// LowStockScanJob flags inventory items at or under their minimum
// stock so the warehouse can reorder before a departure.
type LowStockScanJob struct {
	Service *inventory.Service
	Logger  *slog.Logger
}

// NewLowStockScanJob initialises the low stock scan handler.
func NewLowStockScanJob(service *inventory.Service, logger *slog.Logger) *LowStockScanJob {
	return &LowStockScanJob{Service: service, Logger: logger}
}

// Handle executes the scan.
func (j *LowStockScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Service == nil {
		return errors.New("low stock scan: handler not configured")
	}

	logger := j.logger()
	logger.Info("starting low stock scan")

	items, err := j.Service.ListLowStock(ctx)
	if err != nil {
		logger.Error("scan failed", slog.Any("error", err))
		return err
	}
	for _, item := range items {
		logger.Warn("item below minimum stock",
			slog.String("item_code", item.ItemCode),
			slog.String("item_name", item.ItemName),
			slog.Int("current_stock", item.CurrentStock),
			slog.Int("minimum_stock", item.MinimumStock),
		)
	}

	logger.Info("completed low stock scan", slog.Int("low_stock_items", len(items)))
	return nil
}

func (j *LowStockScanJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskLowStockScan))
	}
	return slog.Default().With(slog.String("job", TaskLowStockScan))
}
