package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "pagamentos_xpto/docs" // This will be auto-generated
	"pagamentos_xpto/internal/adapter/http/handlers"
	repository2 "pagamentos_xpto/internal/adapter/persistence/repository"
	"pagamentos_xpto/internal/domain/entities"
	"pagamentos_xpto/internal/domain/installments"
	"pagamentos_xpto/internal/infrastructure/database"
	"pagamentos_xpto/internal/infrastructure/providers"
	"pagamentos_xpto/internal/usecase"
	"pagamentos_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const acquirerRequestTimeout = 5 * time.Second

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	recordRepo := repository2.NewPaymentRecordDynamoRepository(ddb)

	var adapters []interfaces.IProviderAdapter

	pixAdapter, err := providers.NewMercadoPagoPixAdapter(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), os.Getenv("MERCADOPAGO_PAYER_EMAIL"))
	if err != nil {
		log.Printf("Mercado Pago pix adapter not configured: %v", err)
	} else {
		adapters = append(adapters, pixAdapter)
	}

	if creditURL := os.Getenv("ACQUIRER_CREDIT_URL"); creditURL != "" {
		adapters = append(adapters, providers.NewAcquirerCardAdapter("acquirer_credit", entities.MethodCreditCard, creditURL, acquirerRequestTimeout))
	} else {
		log.Printf("Credit acquirer adapter not configured: ACQUIRER_CREDIT_URL is empty")
	}

	if debitURL := os.Getenv("ACQUIRER_DEBIT_URL"); debitURL != "" {
		adapters = append(adapters, providers.NewAcquirerCardAdapter("acquirer_debit", entities.MethodDebitCard, debitURL, acquirerRequestTimeout))
	} else {
		log.Printf("Debit acquirer adapter not configured: ACQUIRER_DEBIT_URL is empty")
	}

	orchestrator := usecase.NewPaymentOrchestratorUseCase(recordRepo, usecase.OrchestratorConfigFromEnv(), adapters...)
	calculator := installments.NewCalculator(installments.PolicyFromEnv())

	paymentHandler := handlers.NewPaymentHandler(orchestrator)
	checkoutHandler := handlers.NewCheckoutHandler(calculator)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, checkoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
