package main

import (
	"context"
	"log"

	_ "cianorte_vendas/docs"
	"cianorte_vendas/internal/adapter/http/routes"
	"cianorte_vendas/internal/infrastructure/observability"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cianorte Vendas Storefront API
// @version         1.0
// @description     Storefront service (catalog browsing, cart and checkout) backed by the order, catalog and auth collaborators plus Mercado Pago.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	ctx := context.Background()

	shutdown, err := observability.SetupTracing(ctx)
	if err != nil {
		log.Fatalf("failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	routes.Run()
}
