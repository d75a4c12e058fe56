package routes

import (
	"pagamentos_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments     = "/payments"
	PathCards        = "/cards"
	PathInstallments = "/installments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, checkoutHandler *handlers.CheckoutHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/pix", paymentHandler.CreatePixPayment)
		payments.POST("/card", paymentHandler.CreateCardPayment)
		payments.GET("/health", paymentHandler.ProvidersHealth)
		payments.GET("/:id/status", paymentHandler.CheckPaymentStatus)
	}

	cards := rg.Group(PathCards)
	{
		cards.POST("/validate", checkoutHandler.ValidateCard)
	}

	rg.GET(PathInstallments, checkoutHandler.ListInstallmentOptions)
}
