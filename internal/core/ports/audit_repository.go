// internal/core/ports/audit_repository.go
package ports

import (
	"context"
	"time"

	"github.com/aileenong/kprimefood/internal/core/domain"
)

// AuditRepository defines the persistence port for the append-only
// ledger. There is deliberately no update or delete operation.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, params AuditListParams) (*AuditListResult, error)
}

// AuditListParams holds parameters for listing ledger entries
type AuditListParams struct {
	ItemName string
	Action   string
	Username string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// AuditListResult holds the result of listing ledger entries
type AuditListResult struct {
	Entries    []*domain.AuditEntry `json:"entries"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalCount int64                `json:"total_count"`
	TotalPages int                  `json:"total_pages"`
}
