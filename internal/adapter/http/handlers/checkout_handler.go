package handlers

import (
	"log"
	"net/http"
	"strconv"

	"pagamentos_xpto/internal/adapter/http/dto/request"
	"pagamentos_xpto/internal/adapter/http/dto/response"
	"pagamentos_xpto/internal/domain/card"
	"pagamentos_xpto/internal/domain/installments"
	"pagamentos_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler serves the pure checkout helpers: structural card
// validation and installment simulation. Neither touches a provider.

type CheckoutHandler struct {
	calculator *installments.Calculator
}

func NewCheckoutHandler(calc *installments.Calculator) *CheckoutHandler {
	return &CheckoutHandler{calculator: calc}
}

// ValidateCard runs the structural card check. The response and logs only
// ever carry the masked number.
func (h *CheckoutHandler) ValidateCard(c *gin.Context) {
	var req request.ValidateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	valid := card.Validate(req.CardNumber)
	masked := card.Mask(req.CardNumber)
	log.Printf("[checkout][handler] card validated card=%s valid=%v", masked, valid)

	c.JSON(http.StatusOK, response.CardValidationResponse{Valid: valid, MaskedNumber: masked})
}

// ListInstallmentOptions simulates the installment plans for the amount
// passed as a query parameter, in minor units.
func (h *CheckoutHandler) ListInstallmentOptions(c *gin.Context) {
	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil {
		log.Printf("[checkout][handler] invalid amount %q", c.Query("amount"))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	opts, err := h.calculator.ComputeOptions(amount)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallmentOptions(amount, opts))
}
