package interfaces

import (
	"context"

	"pagamentos_xpto/internal/domain/entities"
)

// IPaymentRecordRepository persists payment records across poll cycles.
//
// The orchestrator uses it for terminal-status pinning, to remember which rail
// issued an id, and to keep the raw provider payload for audit. The store is
// advisory on the request path: a write failure is logged, never surfaced.
type IPaymentRecordRepository interface {
	Save(ctx context.Context, record entities.PaymentRecord) error
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
}
