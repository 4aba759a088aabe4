// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Task type names registered on the worker mux.
const (
	TypeStatementSnapshot = "statement:snapshot"
	TypeLowStockScan      = "stock:low_scan"
	TypeDashboardRefresh  = "dashboard:refresh"
	TypeCleanupOldData    = "cleanup:old_data"
)

// StatementSnapshotPayload asks the worker to assemble and archive one
// customer statement.
type StatementSnapshotPayload struct {
	CustomerID int64     `json:"customer_id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
}

// LowStockScanPayload carries the threshold for a stock scan.
type LowStockScanPayload struct {
	Threshold int `json:"threshold"`
}

// NewStatementSnapshotTask builds the asynq task for a snapshot run
func NewStatementSnapshotTask(customerID int64, from, to time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(StatementSnapshotPayload{
		CustomerID: customerID,
		From:       from,
		To:         to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot payload: %w", err)
	}
	return asynq.NewTask(TypeStatementSnapshot, payload), nil
}

// NewLowStockScanTask builds the asynq task for a low stock scan
func NewLowStockScanTask(threshold int) (*asynq.Task, error) {
	payload, err := json.Marshal(LowStockScanPayload{Threshold: threshold})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scan payload: %w", err)
	}
	return asynq.NewTask(TypeLowStockScan, payload), nil
}
