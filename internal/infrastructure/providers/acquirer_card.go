package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"pagamentos_xpto/internal/domain/card"
	"pagamentos_xpto/internal/domain/entities"
	"pagamentos_xpto/internal/domain/status"
	"pagamentos_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// AcquirerCardAdapter drives a card rail (credit or debit) through the
// acquirer's JSON API:
//
//	POST /payments                 create an authorization/capture
//	GET  /payments/{id}            current status
//	GET  /payments/service-health  reachability probe
//
// Card payments start as processing while the acquirer runs authorization.
// The full PAN only ever appears on the wire to the acquirer; logs carry the
// masked form.
type AcquirerCardAdapter struct {
	name    string
	method  entities.PaymentMethod
	baseURL string
	client  *http.Client
}

var _ interfaces.IProviderAdapter = (*AcquirerCardAdapter)(nil)

func NewAcquirerCardAdapter(name string, method entities.PaymentMethod, baseURL string, timeout time.Duration) *AcquirerCardAdapter {
	return &AcquirerCardAdapter{
		name:    name,
		method:  method,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (a *AcquirerCardAdapter) Name() string { return a.name }

func (a *AcquirerCardAdapter) Method() entities.PaymentMethod { return a.method }

type acquirerCreateRequest struct {
	ID           string            `json:"id"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Description  string            `json:"description,omitempty"`
	CustomerID   string            `json:"customer_id"`
	CardNumber   string            `json:"card_number"`
	Installments int               `json:"installments,omitempty"`
	Capture      bool              `json:"capture"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type acquirerPaymentResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updated_at"`
}

type acquirerHealthResponse struct {
	Failing         bool `json:"failing"`
	MinResponseTime int  `json:"min_response_time"`
}

func (a *AcquirerCardAdapter) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
	body := acquirerCreateRequest{
		ID:           uuid.NewString(),
		Amount:       req.Amount,
		Currency:     "BRL",
		Description:  req.Description,
		CustomerID:   req.CustomerID,
		CardNumber:   req.CardNumber,
		Installments: req.Installments,
		// Debit settles immediately; credit waits for capture.
		Capture:  a.method == entities.MethodDebitCard,
		Metadata: req.Metadata,
	}

	log.Printf("[card][adapter] create start provider=%s amount=%d card=%s", a.name, req.Amount, card.Mask(req.CardNumber))
	var resp acquirerPaymentResponse
	if err := a.do(ctx, http.MethodPost, "/payments", body, &resp); err != nil {
		log.Printf("[card][adapter] create failed provider=%s kind=%s err=%v", a.name, entities.KindOf(err), err)
		return entities.PaymentRecord{}, err
	}

	canonical := status.Normalize(a.method, resp.Status)
	if canonical == entities.StatusError {
		log.Printf("[card][adapter] unexpected initial status %q, treating as processing", resp.Status)
		canonical = entities.StatusProcessing
	}

	raw, _ := json.Marshal(resp)
	now := time.Now().UTC()
	log.Printf("[card][adapter] create success provider=%s payment_id=%s provider_status=%s", a.name, resp.ID, resp.Status)
	return entities.PaymentRecord{
		ID:                 resp.ID,
		Method:             a.method,
		Status:             canonical,
		Amount:             req.Amount,
		Description:        req.Description,
		CustomerID:         req.CustomerID,
		CreatedAt:          now,
		UpdatedAt:          now,
		RawProviderPayload: raw,
	}, nil
}

func (a *AcquirerCardAdapter) FetchStatus(ctx context.Context, paymentID string) (entities.ProviderStatus, error) {
	var resp acquirerPaymentResponse
	if err := a.do(ctx, http.MethodGet, "/payments/"+paymentID, nil, &resp); err != nil {
		return entities.ProviderStatus{}, err
	}

	updatedAt := resp.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	raw, _ := json.Marshal(resp)
	return entities.ProviderStatus{
		PaymentID: paymentID,
		Native:    resp.Status,
		Amount:    resp.Amount,
		UpdatedAt: updatedAt,
		Payload:   raw,
	}, nil
}

func (a *AcquirerCardAdapter) HealthCheck(ctx context.Context) entities.ProviderHealth {
	start := time.Now()
	var resp acquirerHealthResponse
	err := a.do(ctx, http.MethodGet, "/payments/service-health", nil, &resp)
	latency := time.Since(start).Milliseconds()

	h := entities.ProviderHealth{ProviderName: a.name, LatencyMs: latency}
	switch {
	case err != nil:
		h.LastError = err.Error()
	case resp.Failing:
		h.LastError = "acquirer reports failing state"
	default:
		h.Reachable = true
	}
	if !h.Reachable {
		log.Printf("[card][adapter] health probe failed provider=%s latency_ms=%d err=%s", a.name, latency, h.LastError)
	}
	return h
}

// do performs one bounded request and re-kinds every failure. Retries belong
// to the orchestrator.
func (a *AcquirerCardAdapter) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return entities.NewPaymentError(entities.KindInternal, a.name, "request marshal failed", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return entities.NewPaymentError(entities.KindInternal, a.name, "request build failed", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return entities.NewPaymentError(entities.KindProviderUnavailable, a.name, "timeout", err)
		}
		return entities.NewPaymentError(entities.KindProviderUnavailable, a.name, "acquirer unreachable", err)
	}
	defer resp.Body.Close()

	if err := a.kindForStatus(resp.StatusCode); err != nil {
		io.Copy(io.Discard, resp.Body)
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return entities.NewPaymentError(entities.KindInternal, a.name, "response decode failed", err)
		}
	}
	return nil
}

func (a *AcquirerCardAdapter) kindForStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return entities.NewPaymentError(entities.KindNotFound, a.name, "payment not found", nil)
	case code == http.StatusTooManyRequests:
		return entities.NewPaymentError(entities.KindRateLimited, a.name, "acquirer throttled the request", nil)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return entities.NewPaymentError(entities.KindInvalidArgument, a.name, "acquirer rejected the payload", nil)
	default:
		return entities.NewPaymentError(entities.KindProviderUnavailable, a.name, fmt.Sprintf("acquirer returned status %d", code), nil)
	}
}
