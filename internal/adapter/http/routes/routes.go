package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "cianorte_vendas/docs" // This will be auto-generated
	"cianorte_vendas/internal/adapter/http/handlers"
	"cianorte_vendas/internal/adapter/http/middleware"
	repository2 "cianorte_vendas/internal/adapter/persistence/repository"
	"cianorte_vendas/internal/infrastructure/database"
	"cianorte_vendas/internal/infrastructure/gateways"
	"cianorte_vendas/internal/infrastructure/payments"
	"cianorte_vendas/internal/usecase"
	"cianorte_vendas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	cartRepo := buildCartRepository()
	sessionRepo := repository2.NewCheckoutSessionMemoryRepository()

	timeout := envDurationMS("API_CLIENT_TIMEOUT_MS", 10*time.Second)
	orderGateway := gateways.NewOrderAPIGateway(getenvDefault("ORDER_API_URL", "http://localhost:5000"), timeout)
	catalogGateway := gateways.NewCatalogAPIGateway(getenvDefault("CATALOG_API_URL", "http://localhost:5000"), timeout)
	authGateway := gateways.NewAuthAPIGateway(getenvDefault("AUTH_API_URL", "http://localhost:5000"), timeout)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	cartUseCase := usecase.NewCartUseCase(cartRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogGateway)
	checkoutUseCase := usecase.NewCheckoutUseCase(sessionRepo, cartRepo, orderGateway, paymentGateway, usecase.CheckoutConfig{
		PollInterval: envDurationMS("CHECKOUT_POLL_INTERVAL_MS", 0),
	})

	cartHandler := handlers.NewCartHandler(cartUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, catalogHandler, cartHandler, checkoutHandler, middleware.RequireAuth(authGateway))
}

// buildCartRepository picks the cart store. DynamoDB keeps carts across
// restarts; memory is the dev/test default.
func buildCartRepository() interfaces.ICartRepository {
	switch getenvDefault("CART_STORE", "memory") {
	case "dynamodb":
		log.Printf("[routes] cart store=dynamodb")
		return repository2.NewCartDynamoRepository(database.ConnectDynamoDB())
	default:
		log.Printf("[routes] cart store=memory")
		return repository2.NewCartMemoryRepository()
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(otelgin.Middleware(getenvDefault("SERVICE_NAME", "storefront-service")))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationMS(key string, def time.Duration) time.Duration {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return def
	}
	return time.Duration(v) * time.Millisecond
}
