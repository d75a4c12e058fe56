package interfaces

import (
	"context"

	"pagamentos_xpto/internal/domain/entities"
)

// IProviderAdapter is the uniform contract every payment rail implements.
//
// Adapters translate canonical requests into one provider's wire format and
// re-kind every provider failure into the canonical error taxonomy. They never
// retry internally beyond a single bounded attempt; retry policy belongs to
// the orchestrator so backoff behaves the same across rails.
type IProviderAdapter interface {
	// Name identifies the provider in health reports and logs.
	Name() string

	// Method is the rail this adapter serves.
	Method() entities.PaymentMethod

	// CreatePayment creates a payment on the provider. The returned record
	// starts at pending or processing per rail semantics.
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error)

	// FetchStatus returns the provider's raw view of a payment. Fails with a
	// not_found kind when the provider has no such id.
	FetchStatus(ctx context.Context, paymentID string) (entities.ProviderStatus, error)

	// HealthCheck probes reachability. It never fails; all failure is captured
	// in the returned ProviderHealth.
	HealthCheck(ctx context.Context) entities.ProviderHealth
}
