package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"pagamentos_xpto/internal/domain/entities"
	"pagamentos_xpto/internal/domain/status"
	"pagamentos_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/paymentmethod"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const mercadoPagoPixProvider = "mercadopago_pix"

// MercadoPagoPixAdapter drives the PIX rail through the Mercado Pago SDK.
//
// PIX payments start as pending: settlement waits on the payer scanning the
// QR code, which travels opaquely inside the raw provider payload.
type MercadoPagoPixAdapter struct {
	payments   payment.Client
	methods    paymentmethod.Client
	payerEmail string
}

var _ interfaces.IProviderAdapter = (*MercadoPagoPixAdapter)(nil)

func NewMercadoPagoPixAdapter(accessToken, payerEmail string) (*MercadoPagoPixAdapter, error) {
	if accessToken == "" {
		log.Printf("[pix][adapter] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[pix][adapter] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[pix][adapter] Mercado Pago client initialized")

	return &MercadoPagoPixAdapter{
		payments:   payment.NewClient(cfg),
		methods:    paymentmethod.NewClient(cfg),
		payerEmail: payerEmail,
	}, nil
}

func (a *MercadoPagoPixAdapter) Name() string { return mercadoPagoPixProvider }

func (a *MercadoPagoPixAdapter) Method() entities.PaymentMethod { return entities.MethodPix }

func (a *MercadoPagoPixAdapter) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
	email := a.payerEmail
	if v, ok := req.Metadata["payer_email"]; ok && v != "" {
		email = v
	}

	metadata := make(map[string]any, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	metadata["customer_id"] = req.CustomerID

	mpReq := payment.Request{
		TransactionAmount: float64(req.Amount) / 100,
		Description:       req.Description,
		PaymentMethodID:   "pix",
		ExternalReference: uuid.NewString(),
		Payer:             &payment.PayerRequest{Email: email},
		Metadata:          metadata,
	}

	log.Printf("[pix][adapter] create start amount=%d external_reference=%s", req.Amount, mpReq.ExternalReference)
	resp, err := a.payments.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[pix][adapter] sdk create failed err=%v", err)
		return entities.PaymentRecord{}, a.kindError("create payment failed", err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[pix][adapter] response marshal failed err=%v", err)
		return entities.PaymentRecord{}, entities.NewPaymentError(entities.KindInternal, a.Name(), "provider response marshal failed", err)
	}

	canonical := status.Normalize(entities.MethodPix, resp.Status)
	if canonical == entities.StatusError {
		log.Printf("[pix][adapter] unexpected initial status %q, treating as pending", resp.Status)
		canonical = entities.StatusPending
	}

	now := time.Now().UTC()
	log.Printf("[pix][adapter] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return entities.PaymentRecord{
		ID:                 fmt.Sprintf("%d", resp.ID),
		Method:             entities.MethodPix,
		Status:             canonical,
		Amount:             req.Amount,
		Description:        req.Description,
		CustomerID:         req.CustomerID,
		CreatedAt:          now,
		UpdatedAt:          now,
		RawProviderPayload: raw,
	}, nil
}

func (a *MercadoPagoPixAdapter) FetchStatus(ctx context.Context, paymentID string) (entities.ProviderStatus, error) {
	// Mercado Pago payment ids are numeric; anything else cannot be ours.
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return entities.ProviderStatus{}, entities.NewPaymentError(entities.KindNotFound, a.Name(), "no payment with id "+paymentID, nil)
	}

	resp, err := a.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[pix][adapter] sdk get failed payment_id=%s err=%v", paymentID, err)
		return entities.ProviderStatus{}, a.kindError("fetch status failed", err)
	}

	raw, _ := json.Marshal(resp)
	return entities.ProviderStatus{
		PaymentID: paymentID,
		Native:    resp.Status,
		Amount:    toMinorUnits(resp.TransactionAmount),
		UpdatedAt: time.Now().UTC(),
		Payload:   raw,
	}, nil
}

// HealthCheck probes the provider with a lightweight authenticated listing.
// It never fails; any error lands in the returned fields.
func (a *MercadoPagoPixAdapter) HealthCheck(ctx context.Context) entities.ProviderHealth {
	start := time.Now()
	_, err := a.methods.List(ctx)
	latency := time.Since(start).Milliseconds()

	h := entities.ProviderHealth{ProviderName: a.Name(), Reachable: err == nil, LatencyMs: latency}
	if err != nil {
		h.LastError = err.Error()
		log.Printf("[pix][adapter] health probe failed latency_ms=%d err=%v", latency, err)
	}
	return h
}

// toMinorUnits converts the SDK's float amount back to integer minor units.
// A plain cast truncates toward zero: 19.99*100 sits just below 1999 in
// float64, so truncation would drop a cent.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// kindError re-kinds an SDK failure. The SDK does not expose typed status
// codes, so only cancellation/timeouts are distinguishable; everything else
// counts as the provider being unavailable.
func (a *MercadoPagoPixAdapter) kindError(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return entities.NewPaymentError(entities.KindProviderUnavailable, a.Name(), "timeout", err)
	}
	return entities.NewPaymentError(entities.KindProviderUnavailable, a.Name(), msg, err)
}
