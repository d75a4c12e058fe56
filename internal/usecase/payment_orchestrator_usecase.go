package usecase

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"pagamentos_xpto/internal/domain/card"
	"pagamentos_xpto/internal/domain/entities"
	"pagamentos_xpto/internal/domain/status"
	"pagamentos_xpto/internal/usecase/interfaces"
)

// statusScanOrder is the fixed priority used when a status lookup arrives
// without a method hint: the first adapter returning a non-not_found result
// wins.
var statusScanOrder = []entities.PaymentMethod{
	entities.MethodPix,
	entities.MethodCreditCard,
	entities.MethodDebitCard,
}

// IPaymentOrchestratorUseCase is the payment facade consumed by the HTTP layer.
//
// It validates canonical requests, dispatches creation to the right rail
// adapter, normalizes provider statuses into the canonical state machine and
// aggregates provider health.
type IPaymentOrchestratorUseCase interface {
	CreatePixPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error)
	CreateCardPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error)
	CheckPaymentStatus(ctx context.Context, paymentID string, method entities.PaymentMethod) (entities.StatusResult, error)
	CheckProvidersHealth(ctx context.Context) map[string]entities.ProviderHealth
}

// OrchestratorConfig bounds the orchestrator's fan-out and retry behavior.
// Create operations are never retried; a duplicate payment is worse than a
// failed one. Status polls are idempotent and retried with capped exponential
// backoff.
type OrchestratorConfig struct {
	HealthCheckTimeout   time.Duration
	StatusRetryMax       int
	StatusRetryBaseDelay time.Duration
	StatusRetryMaxDelay  time.Duration
}

func DefaultOrchestratorConfig() OrchestratorConfig {
	return OrchestratorConfig{
		HealthCheckTimeout:   2 * time.Second,
		StatusRetryMax:       2,
		StatusRetryBaseDelay: 100 * time.Millisecond,
		StatusRetryMaxDelay:  time.Second,
	}
}

// OrchestratorConfigFromEnv reads tuning knobs from the environment, falling
// back to the defaults.
//
// Supported env vars:
//   - HEALTHCHECK_TIMEOUT_MS (default: 2000)
//   - STATUS_RETRY_MAX (default: 2)
//   - STATUS_RETRY_BASE_DELAY_MS (default: 100)
//   - STATUS_RETRY_MAX_DELAY_MS (default: 1000)
func OrchestratorConfigFromEnv() OrchestratorConfig {
	cfg := DefaultOrchestratorConfig()
	if v, err := strconv.Atoi(os.Getenv("HEALTHCHECK_TIMEOUT_MS")); err == nil && v > 0 {
		cfg.HealthCheckTimeout = time.Duration(v) * time.Millisecond
	}
	if v, err := strconv.Atoi(os.Getenv("STATUS_RETRY_MAX")); err == nil && v >= 0 {
		cfg.StatusRetryMax = v
	}
	if v, err := strconv.Atoi(os.Getenv("STATUS_RETRY_BASE_DELAY_MS")); err == nil && v > 0 {
		cfg.StatusRetryBaseDelay = time.Duration(v) * time.Millisecond
	}
	if v, err := strconv.Atoi(os.Getenv("STATUS_RETRY_MAX_DELAY_MS")); err == nil && v > 0 {
		cfg.StatusRetryMaxDelay = time.Duration(v) * time.Millisecond
	}
	return cfg
}

type PaymentOrchestratorUseCase struct {
	adapters map[entities.PaymentMethod]interfaces.IProviderAdapter
	records  interfaces.IPaymentRecordRepository
	cfg      OrchestratorConfig
}

var _ IPaymentOrchestratorUseCase = (*PaymentOrchestratorUseCase)(nil)

// NewPaymentOrchestratorUseCase builds the facade over a fixed adapter
// registry keyed by method. Passing two adapters for the same method is a
// wiring bug and panics at startup.
func NewPaymentOrchestratorUseCase(records interfaces.IPaymentRecordRepository, cfg OrchestratorConfig, adapters ...interfaces.IProviderAdapter) *PaymentOrchestratorUseCase {
	registry := make(map[entities.PaymentMethod]interfaces.IProviderAdapter, len(adapters))
	for _, a := range adapters {
		if a == nil {
			continue
		}
		if _, dup := registry[a.Method()]; dup {
			log.Panicf("[orchestrator][usecase] duplicate adapter for method %s", a.Method())
		}
		registry[a.Method()] = a
	}
	return &PaymentOrchestratorUseCase{adapters: registry, records: records, cfg: cfg}
}

func (u *PaymentOrchestratorUseCase) CreatePixPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
	req.Method = entities.MethodPix
	return u.createPayment(ctx, req)
}

func (u *PaymentOrchestratorUseCase) CreateCardPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
	if req.Method == "" {
		req.Method = entities.MethodCreditCard
	}
	if req.Method != entities.MethodCreditCard && req.Method != entities.MethodDebitCard {
		return entities.PaymentRecord{}, entities.NewPaymentError(entities.KindInvalidArgument, "", "method must be credit_card or debit_card", nil)
	}
	if !card.Validate(req.CardNumber) {
		log.Printf("[orchestrator][usecase] structurally invalid card number card=%s", card.Mask(req.CardNumber))
		return entities.PaymentRecord{}, entities.NewPaymentError(entities.KindInvalidArgument, "", "invalid card number", nil)
	}
	return u.createPayment(ctx, req)
}

func (u *PaymentOrchestratorUseCase) createPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
	if req.Amount <= 0 {
		return entities.PaymentRecord{}, entities.NewPaymentError(entities.KindInvalidArgument, "", "amount must be greater than zero", nil)
	}
	if strings.TrimSpace(req.CustomerID) == "" {
		return entities.PaymentRecord{}, entities.NewPaymentError(entities.KindInvalidArgument, "", "customer_id is required", nil)
	}

	adapter, ok := u.adapters[req.Method]
	if !ok {
		return entities.PaymentRecord{}, entities.NewPaymentError(entities.KindProviderUnavailable, "", "no provider configured for method "+string(req.Method), nil)
	}

	log.Printf("[orchestrator][usecase] create start method=%s provider=%s amount=%d customer_id=%s", req.Method, adapter.Name(), req.Amount, req.CustomerID)
	rec, err := adapter.CreatePayment(ctx, req)
	if err != nil {
		log.Printf("[orchestrator][usecase] create failed method=%s provider=%s kind=%s err=%v", req.Method, adapter.Name(), entities.KindOf(err), err)
		return entities.PaymentRecord{}, err
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	u.saveRecord(ctx, rec)
	log.Printf("[orchestrator][usecase] create success method=%s provider=%s payment_id=%s status=%s", req.Method, adapter.Name(), rec.ID, rec.Status)
	return rec, nil
}

// CheckPaymentStatus polls the provider for a payment's current status. When
// method is empty the adapters are probed in the fixed priority order; a
// stored record short-circuits both the scan and, for terminal statuses, the
// provider round-trip entirely.
func (u *PaymentOrchestratorUseCase) CheckPaymentStatus(ctx context.Context, paymentID string, method entities.PaymentMethod) (entities.StatusResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.StatusResult{}, entities.NewPaymentError(entities.KindInvalidArgument, "", "payment id is required", nil)
	}
	if method != "" && !method.Valid() {
		return entities.StatusResult{}, entities.NewPaymentError(entities.KindInvalidArgument, "", "unknown payment method "+string(method), nil)
	}

	stored := u.loadRecord(ctx, paymentID)
	if stored.ID != "" && stored.Status.Terminal() {
		log.Printf("[orchestrator][usecase] status pinned terminal payment_id=%s status=%s", paymentID, stored.Status)
		return entities.StatusResult{
			ID:        stored.ID,
			Method:    stored.Method,
			Status:    stored.Status,
			Amount:    stored.Amount,
			UpdatedAt: stored.UpdatedAt,
		}, nil
	}

	scan := statusScanOrder
	if method != "" {
		if _, ok := u.adapters[method]; !ok {
			return entities.StatusResult{}, entities.NewPaymentError(entities.KindProviderUnavailable, "", "no provider configured for method "+string(method), nil)
		}
		scan = []entities.PaymentMethod{method}
	} else if stored.ID != "" && stored.Method.Valid() {
		scan = []entities.PaymentMethod{stored.Method}
	}

	sawFailure := false
	for _, m := range scan {
		adapter, ok := u.adapters[m]
		if !ok {
			continue
		}

		raw, err := u.fetchStatusWithRetry(ctx, adapter, paymentID)
		if err != nil {
			if entities.IsKind(err, entities.KindNotFound) {
				log.Printf("[orchestrator][usecase] status miss provider=%s payment_id=%s", adapter.Name(), paymentID)
				continue
			}
			log.Printf("[orchestrator][usecase] status probe failed provider=%s payment_id=%s kind=%s err=%v", adapter.Name(), paymentID, entities.KindOf(err), err)
			sawFailure = true
			continue
		}

		return u.resolveStatus(ctx, adapter.Method(), stored, raw), nil
	}

	if sawFailure {
		return entities.StatusResult{}, entities.NewPaymentError(entities.KindProviderUnavailable, "", "no provider could be reached for payment "+paymentID, nil)
	}
	return entities.StatusResult{}, entities.NewPaymentError(entities.KindNotFound, "", "payment "+paymentID+" not found on any provider", nil)
}

// resolveStatus normalizes a raw observation and applies the transition rules
// against whatever was stored before, then persists the outcome.
func (u *PaymentOrchestratorUseCase) resolveStatus(ctx context.Context, method entities.PaymentMethod, stored entities.PaymentRecord, raw entities.ProviderStatus) entities.StatusResult {
	normalized := status.Normalize(method, raw.Native)
	effective := normalized
	if stored.ID != "" && !status.CanTransition(stored.Status, normalized) {
		log.Printf("[orchestrator][usecase] rejected transition payment_id=%s from=%s to=%s native=%q", raw.PaymentID, stored.Status, normalized, raw.Native)
		effective = stored.Status
	}

	updatedAt := raw.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	amount := raw.Amount
	if amount == 0 {
		amount = stored.Amount
	}

	rec := stored
	if rec.ID == "" {
		rec = entities.PaymentRecord{ID: raw.PaymentID, Method: method, CreatedAt: updatedAt}
	}
	rec.Status = effective
	rec.Amount = amount
	rec.UpdatedAt = updatedAt
	if len(raw.Payload) > 0 {
		rec.RawProviderPayload = raw.Payload
	}
	u.saveRecord(ctx, rec)

	return entities.StatusResult{
		ID:        rec.ID,
		Method:    method,
		Status:    effective,
		Amount:    amount,
		UpdatedAt: updatedAt,
	}
}

// fetchStatusWithRetry retries idempotent status fetches on transport
// failures only, with capped exponential backoff.
func (u *PaymentOrchestratorUseCase) fetchStatusWithRetry(ctx context.Context, adapter interfaces.IProviderAdapter, paymentID string) (entities.ProviderStatus, error) {
	delay := u.cfg.StatusRetryBaseDelay
	for attempt := 0; ; attempt++ {
		raw, err := adapter.FetchStatus(ctx, paymentID)
		if err == nil {
			return raw, nil
		}
		if !entities.IsKind(err, entities.KindProviderUnavailable) || attempt >= u.cfg.StatusRetryMax {
			return entities.ProviderStatus{}, err
		}

		log.Printf("[orchestrator][usecase] status retry provider=%s payment_id=%s attempt=%d delay=%s", adapter.Name(), paymentID, attempt+1, delay)
		select {
		case <-ctx.Done():
			return entities.ProviderStatus{}, entities.NewPaymentError(entities.KindProviderUnavailable, adapter.Name(), "status poll cancelled", ctx.Err())
		case <-time.After(delay):
		}
		if delay *= 2; delay > u.cfg.StatusRetryMaxDelay {
			delay = u.cfg.StatusRetryMaxDelay
		}
	}
}

// CheckProvidersHealth probes every configured adapter concurrently and joins
// on all results. The aggregate never fails and always covers every adapter;
// a probe that outlives the per-adapter timeout is reported as unreachable
// with lastError "timeout", bounding total latency to the slowest timeout.
func (u *PaymentOrchestratorUseCase) CheckProvidersHealth(ctx context.Context) map[string]entities.ProviderHealth {
	results := make(map[string]entities.ProviderHealth, len(u.adapters))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, adapter := range u.adapters {
		wg.Add(1)
		go func(a interfaces.IProviderAdapter) {
			defer wg.Done()

			probeCtx, cancel := context.WithTimeout(ctx, u.cfg.HealthCheckTimeout)
			defer cancel()

			ch := make(chan entities.ProviderHealth, 1)
			go func() { ch <- a.HealthCheck(probeCtx) }()

			var h entities.ProviderHealth
			select {
			case h = <-ch:
			case <-probeCtx.Done():
				h = entities.ProviderHealth{
					ProviderName: a.Name(),
					Reachable:    false,
					LatencyMs:    u.cfg.HealthCheckTimeout.Milliseconds(),
					LastError:    "timeout",
				}
			}

			mu.Lock()
			results[a.Name()] = h
			mu.Unlock()
		}(adapter)
	}
	wg.Wait()

	return results
}

func (u *PaymentOrchestratorUseCase) saveRecord(ctx context.Context, rec entities.PaymentRecord) {
	if u.records == nil || rec.ID == "" {
		return
	}
	if err := u.records.Save(ctx, rec); err != nil {
		log.Printf("[orchestrator][usecase] record save failed payment_id=%s err=%v", rec.ID, err)
	}
}

func (u *PaymentOrchestratorUseCase) loadRecord(ctx context.Context, id string) entities.PaymentRecord {
	if u.records == nil {
		return entities.PaymentRecord{}
	}
	rec, err := u.records.GetByID(ctx, id)
	if err != nil {
		log.Printf("[orchestrator][usecase] record load failed payment_id=%s err=%v", id, err)
		return entities.PaymentRecord{}
	}
	return rec
}
