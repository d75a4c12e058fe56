package usecase

import (
	"context"
	"testing"
	"time"

	"pagamentos_xpto/internal/domain/entities"
	mock_interfaces "pagamentos_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testConfig() OrchestratorConfig {
	return OrchestratorConfig{
		HealthCheckTimeout:   100 * time.Millisecond,
		StatusRetryMax:       2,
		StatusRetryBaseDelay: time.Millisecond,
		StatusRetryMaxDelay:  5 * time.Millisecond,
	}
}

func newMockAdapter(ctrl *gomock.Controller, name string, method entities.PaymentMethod) *mock_interfaces.MockIProviderAdapter {
	m := mock_interfaces.NewMockIProviderAdapter(ctrl)
	m.EXPECT().Name().Return(name).AnyTimes()
	m.EXPECT().Method().Return(method).AnyTimes()
	return m
}

func TestPaymentOrchestrator_CreatePixPayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentOrchestratorUseCase(records, testConfig(), pix)

		pix.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
				if req.Method != entities.MethodPix {
					t.Fatalf("expected method forced to pix, got %s", req.Method)
				}
				return entities.PaymentRecord{ID: "333111", Method: entities.MethodPix, Status: entities.StatusPending, Amount: req.Amount}, nil
			},
		)
		records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		rec, err := uc.CreatePixPayment(context.Background(), entities.PaymentRequest{Amount: 2990, Description: "test", CustomerID: "c1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ID == "" || rec.Method != entities.MethodPix {
			t.Fatalf("unexpected record: %+v", rec)
		}
		if rec.Status != entities.StatusPending && rec.Status != entities.StatusProcessing {
			t.Fatalf("initial status must be pending or processing, got %s", rec.Status)
		}
		if rec.CreatedAt.IsZero() || rec.UpdatedAt.IsZero() {
			t.Fatalf("timestamps must be attached: %+v", rec)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix)

		for _, amount := range []int64{0, -10} {
			_, err := uc.CreatePixPayment(context.Background(), entities.PaymentRequest{Amount: amount, CustomerID: "c1"})
			if !entities.IsKind(err, entities.KindInvalidArgument) {
				t.Fatalf("amount=%d: expected invalid_argument, got %v", amount, err)
			}
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix)

		_, err := uc.CreatePixPayment(context.Background(), entities.PaymentRequest{Amount: 100, CustomerID: "  "})
		if !entities.IsKind(err, entities.KindInvalidArgument) {
			t.Fatalf("expected invalid_argument, got %v", err)
		}
	})

	t.Run("no adapter configured", func(t *testing.T) {
		uc := NewPaymentOrchestratorUseCase(nil, testConfig())

		_, err := uc.CreatePixPayment(context.Background(), entities.PaymentRequest{Amount: 100, CustomerID: "c1"})
		if !entities.IsKind(err, entities.KindProviderUnavailable) {
			t.Fatalf("expected provider_unavailable, got %v", err)
		}
	})

	t.Run("adapter error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix)

		pix.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, entities.NewPaymentError(entities.KindRateLimited, "mercadopago_pix", "throttled", nil))

		_, err := uc.CreatePixPayment(context.Background(), entities.PaymentRequest{Amount: 100, CustomerID: "c1"})
		if !entities.IsKind(err, entities.KindRateLimited) {
			t.Fatalf("expected rate_limited, got %v", err)
		}
	})
}

func TestPaymentOrchestrator_CreateCardPayment(t *testing.T) {
	t.Run("invalid card number rejected before dispatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), credit)

		_, err := uc.CreateCardPayment(context.Background(), entities.PaymentRequest{Amount: 100, CustomerID: "c1", CardNumber: "4111111111111112"})
		if !entities.IsKind(err, entities.KindInvalidArgument) {
			t.Fatalf("expected invalid_argument, got %v", err)
		}
	})

	t.Run("pix is not a card method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), credit)

		_, err := uc.CreateCardPayment(context.Background(), entities.PaymentRequest{Amount: 100, CustomerID: "c1", Method: entities.MethodPix, CardNumber: "4111111111111111"})
		if !entities.IsKind(err, entities.KindInvalidArgument) {
			t.Fatalf("expected invalid_argument, got %v", err)
		}
	})

	t.Run("defaults to credit card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), credit)

		credit.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{ID: "pay-1", Method: entities.MethodCreditCard, Status: entities.StatusProcessing}, nil)

		rec, err := uc.CreateCardPayment(context.Background(), entities.PaymentRequest{Amount: 100, CustomerID: "c1", CardNumber: "4111111111111111"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Method != entities.MethodCreditCard || rec.Status != entities.StatusProcessing {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("debit routed to debit adapter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		debit := newMockAdapter(ctrl, "acquirer_debit", entities.MethodDebitCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), credit, debit)

		debit.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{ID: "pay-2", Method: entities.MethodDebitCard, Status: entities.StatusProcessing}, nil)

		rec, err := uc.CreateCardPayment(context.Background(), entities.PaymentRequest{Amount: 100, CustomerID: "c1", Method: entities.MethodDebitCard, CardNumber: "4111111111111111"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ID != "pay-2" {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})
}

func TestPaymentOrchestrator_CheckPaymentStatus(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewPaymentOrchestratorUseCase(nil, testConfig())
		if _, err := uc.CheckPaymentStatus(context.Background(), "  ", ""); !entities.IsKind(err, entities.KindInvalidArgument) {
			t.Fatalf("expected invalid_argument, got %v", err)
		}
	})

	t.Run("unknown method hint", func(t *testing.T) {
		uc := NewPaymentOrchestratorUseCase(nil, testConfig())
		if _, err := uc.CheckPaymentStatus(context.Background(), "pay-1", entities.PaymentMethod("boleto")); !entities.IsKind(err, entities.KindInvalidArgument) {
			t.Fatalf("expected invalid_argument, got %v", err)
		}
	})

	t.Run("hinted method without configured adapter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix)

		// The rail may hold the payment; its adapter being down is not a
		// positive "no such payment". No adapter gets probed.
		_, err := uc.CheckPaymentStatus(context.Background(), "pay-1", entities.MethodDebitCard)
		if !entities.IsKind(err, entities.KindProviderUnavailable) {
			t.Fatalf("expected provider_unavailable, got %v", err)
		}
	})

	t.Run("method hint queries only that adapter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix, credit)

		credit.EXPECT().FetchStatus(gomock.Any(), "pay-1").Return(entities.ProviderStatus{PaymentID: "pay-1", Native: "captured", Amount: 500}, nil)

		res, err := uc.CheckPaymentStatus(context.Background(), "pay-1", entities.MethodCreditCard)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusApproved || res.Method != entities.MethodCreditCard || res.Amount != 500 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("scan stops at first non-miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		debit := newMockAdapter(ctrl, "acquirer_debit", entities.MethodDebitCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix, credit, debit)

		pix.EXPECT().FetchStatus(gomock.Any(), "pay-1").Return(entities.ProviderStatus{}, entities.NewPaymentError(entities.KindNotFound, "mercadopago_pix", "not found", nil))
		credit.EXPECT().FetchStatus(gomock.Any(), "pay-1").Return(entities.ProviderStatus{PaymentID: "pay-1", Native: "declined"}, nil)

		res, err := uc.CheckPaymentStatus(context.Background(), "pay-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusDeclined || res.Method != entities.MethodCreditCard {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("all adapters report not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		debit := newMockAdapter(ctrl, "acquirer_debit", entities.MethodDebitCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix, credit, debit)

		miss := entities.NewPaymentError(entities.KindNotFound, "", "not found", nil)
		pix.EXPECT().FetchStatus(gomock.Any(), "nonexistent-id").Return(entities.ProviderStatus{}, miss)
		credit.EXPECT().FetchStatus(gomock.Any(), "nonexistent-id").Return(entities.ProviderStatus{}, miss)
		debit.EXPECT().FetchStatus(gomock.Any(), "nonexistent-id").Return(entities.ProviderStatus{}, miss)

		_, err := uc.CheckPaymentStatus(context.Background(), "nonexistent-id", "")
		if !entities.IsKind(err, entities.KindNotFound) {
			t.Fatalf("expected not_found, got %v", err)
		}
	})

	t.Run("failures during scan surface as unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix, credit)

		down := entities.NewPaymentError(entities.KindProviderUnavailable, "", "down", nil)
		miss := entities.NewPaymentError(entities.KindNotFound, "", "not found", nil)
		pix.EXPECT().FetchStatus(gomock.Any(), "pay-1").Return(entities.ProviderStatus{}, down).Times(3)
		credit.EXPECT().FetchStatus(gomock.Any(), "pay-1").Return(entities.ProviderStatus{}, miss)

		_, err := uc.CheckPaymentStatus(context.Background(), "pay-1", "")
		if !entities.IsKind(err, entities.KindProviderUnavailable) {
			t.Fatalf("expected provider_unavailable, got %v", err)
		}
	})

	t.Run("transient failure retried until success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix)

		down := entities.NewPaymentError(entities.KindProviderUnavailable, "mercadopago_pix", "down", nil)
		gomock.InOrder(
			pix.EXPECT().FetchStatus(gomock.Any(), "333111").Return(entities.ProviderStatus{}, down),
			pix.EXPECT().FetchStatus(gomock.Any(), "333111").Return(entities.ProviderStatus{}, down),
			pix.EXPECT().FetchStatus(gomock.Any(), "333111").Return(entities.ProviderStatus{PaymentID: "333111", Native: "approved"}, nil),
		)

		res, err := uc.CheckPaymentStatus(context.Background(), "333111", entities.MethodPix)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusApproved {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("rate limit is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix, credit)

		throttled := entities.NewPaymentError(entities.KindRateLimited, "", "throttled", nil)
		miss := entities.NewPaymentError(entities.KindNotFound, "", "not found", nil)
		pix.EXPECT().FetchStatus(gomock.Any(), "pay-1").Return(entities.ProviderStatus{}, throttled).Times(1)
		credit.EXPECT().FetchStatus(gomock.Any(), "pay-1").Return(entities.ProviderStatus{}, miss)

		_, err := uc.CheckPaymentStatus(context.Background(), "pay-1", "")
		if !entities.IsKind(err, entities.KindProviderUnavailable) {
			t.Fatalf("expected provider_unavailable, got %v", err)
		}
	})
}

func TestPaymentOrchestrator_TerminalStatusPinning(t *testing.T) {
	t.Run("terminal record short-circuits the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentOrchestratorUseCase(records, testConfig(), pix)

		records.EXPECT().GetByID(gomock.Any(), "333111").Return(entities.PaymentRecord{
			ID:     "333111",
			Method: entities.MethodPix,
			Status: entities.StatusApproved,
			Amount: 2990,
		}, nil)

		res, err := uc.CheckPaymentStatus(context.Background(), "333111", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusApproved || res.Amount != 2990 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("known method skips the scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentOrchestratorUseCase(records, testConfig(), pix, credit)

		records.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.PaymentRecord{
			ID:     "pay-1",
			Method: entities.MethodCreditCard,
			Status: entities.StatusProcessing,
		}, nil)
		credit.EXPECT().FetchStatus(gomock.Any(), "pay-1").Return(entities.ProviderStatus{PaymentID: "pay-1", Native: "captured"}, nil)
		records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.CheckPaymentStatus(context.Background(), "pay-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusApproved {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("illegal transition keeps stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentOrchestratorUseCase(records, testConfig(), pix)

		records.EXPECT().GetByID(gomock.Any(), "333111").Return(entities.PaymentRecord{
			ID:     "333111",
			Method: entities.MethodPix,
			Status: entities.StatusProcessing,
		}, nil)
		pix.EXPECT().FetchStatus(gomock.Any(), "333111").Return(entities.ProviderStatus{PaymentID: "333111", Native: "pending"}, nil)
		records.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.PaymentRecord) error {
				if rec.Status != entities.StatusProcessing {
					t.Fatalf("stored status must not regress, got %s", rec.Status)
				}
				return nil
			},
		)

		res, err := uc.CheckPaymentStatus(context.Background(), "333111", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusProcessing {
			t.Fatalf("expected pinned processing, got %s", res.Status)
		}
	})

	t.Run("record store failure does not break polling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
		uc := NewPaymentOrchestratorUseCase(records, testConfig(), pix)

		records.EXPECT().GetByID(gomock.Any(), "333111").Return(entities.PaymentRecord{}, context.DeadlineExceeded)
		pix.EXPECT().FetchStatus(gomock.Any(), "333111").Return(entities.ProviderStatus{PaymentID: "333111", Native: "approved"}, nil)
		records.EXPECT().Save(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)

		res, err := uc.CheckPaymentStatus(context.Background(), "333111", entities.MethodPix)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusApproved {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPaymentOrchestrator_CheckProvidersHealth(t *testing.T) {
	t.Run("aggregates every adapter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix, credit)

		pix.EXPECT().HealthCheck(gomock.Any()).Return(entities.ProviderHealth{ProviderName: "mercadopago_pix", Reachable: true, LatencyMs: 12})
		credit.EXPECT().HealthCheck(gomock.Any()).Return(entities.ProviderHealth{ProviderName: "acquirer_credit", Reachable: false, LastError: "connection refused"})

		res := uc.CheckProvidersHealth(context.Background())
		if len(res) != 2 {
			t.Fatalf("expected entries for every provider, got %d", len(res))
		}
		if !res["mercadopago_pix"].Reachable {
			t.Fatalf("expected pix reachable: %+v", res["mercadopago_pix"])
		}
		if res["acquirer_credit"].Reachable {
			t.Fatalf("expected credit unreachable: %+v", res["acquirer_credit"])
		}
	})

	t.Run("slow probe is bounded by the timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pix := newMockAdapter(ctrl, "mercadopago_pix", entities.MethodPix)
		credit := newMockAdapter(ctrl, "acquirer_credit", entities.MethodCreditCard)
		uc := NewPaymentOrchestratorUseCase(nil, testConfig(), pix, credit)

		pix.EXPECT().HealthCheck(gomock.Any()).Return(entities.ProviderHealth{ProviderName: "mercadopago_pix", Reachable: true})
		credit.EXPECT().HealthCheck(gomock.Any()).DoAndReturn(
			func(ctx context.Context) entities.ProviderHealth {
				<-ctx.Done()
				time.Sleep(500 * time.Millisecond)
				return entities.ProviderHealth{ProviderName: "acquirer_credit", Reachable: true}
			},
		)

		start := time.Now()
		res := uc.CheckProvidersHealth(context.Background())
		elapsed := time.Since(start)

		if elapsed > 400*time.Millisecond {
			t.Fatalf("aggregate took %s, expected to be bounded by the probe timeout", elapsed)
		}
		if len(res) != 2 {
			t.Fatalf("expected entries for every provider, got %d", len(res))
		}
		slow := res["acquirer_credit"]
		if slow.Reachable || slow.LastError != "timeout" {
			t.Fatalf("expected timed-out probe, got %+v", slow)
		}
	})
}
