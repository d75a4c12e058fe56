package handlers

import (
	"log"
	"net/http"

	"pagamentos_xpto/internal/adapter/http/dto/request"
	"pagamentos_xpto/internal/adapter/http/dto/response"
	"pagamentos_xpto/internal/domain/card"
	"pagamentos_xpto/internal/domain/entities"
	"pagamentos_xpto/internal/usecase"
	"pagamentos_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests against the payment orchestrator.

type PaymentHandler struct {
	usecase usecase.IPaymentOrchestratorUseCase
}

func NewPaymentHandler(uc usecase.IPaymentOrchestratorUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePixPayment creates a PIX payment.
func (h *PaymentHandler) CreatePixPayment(c *gin.Context) {
	var req request.CreatePixPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] pix create invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] pix create start customer_id=%s amount=%d", req.CustomerID, req.Amount)
	rec, err := h.usecase.CreatePixPayment(c.Request.Context(), req.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] pix create failed customer_id=%s err=%v", req.CustomerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pix create success payment_id=%s status=%s", rec.ID, rec.Status)

	c.JSON(http.StatusCreated, response.FromPaymentRecord(rec))
}

// CreateCardPayment creates a credit or debit card payment.
func (h *PaymentHandler) CreateCardPayment(c *gin.Context) {
	var req request.CreateCardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] card create invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] card create start customer_id=%s amount=%d card=%s", req.CustomerID, req.Amount, card.Mask(req.CardNumber))
	rec, err := h.usecase.CreateCardPayment(c.Request.Context(), req.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] card create failed customer_id=%s err=%v", req.CustomerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] card create success payment_id=%s status=%s", rec.ID, rec.Status)

	c.JSON(http.StatusCreated, response.FromPaymentRecord(rec))
}

// CheckPaymentStatus polls a payment's canonical status. The method query
// parameter is optional; without it the orchestrator scans providers in its
// fixed priority order.
func (h *PaymentHandler) CheckPaymentStatus(c *gin.Context) {
	paymentID := c.Param("id")
	method := entities.PaymentMethod(c.Query("method"))

	res, err := h.usecase.CheckPaymentStatus(c.Request.Context(), paymentID, method)
	if err != nil {
		log.Printf("[payment][handler] status check failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] status check success payment_id=%s status=%s", res.ID, res.Status)

	c.JSON(http.StatusOK, response.FromStatusResult(res))
}

// ProvidersHealth aggregates every provider's reachability. It always
// answers 200: a provider being down is payload, not an endpoint failure.
func (h *PaymentHandler) ProvidersHealth(c *gin.Context) {
	report := h.usecase.CheckProvidersHealth(c.Request.Context())
	c.JSON(http.StatusOK, response.FromProvidersHealth(report))
}

func mapPaymentError(err error) *pkg.AppError {
	switch entities.KindOf(err) {
	case entities.KindInvalidArgument:
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case entities.KindNotFound:
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case entities.KindRateLimited:
		return pkg.NewDomainErrorSimple("RATE_LIMITED", "Provider throttled the request, try again later", http.StatusTooManyRequests)
	case entities.KindProviderUnavailable:
		return pkg.NewDomainErrorSimple("PROVIDER_UNAVAILABLE", "Payment provider unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
