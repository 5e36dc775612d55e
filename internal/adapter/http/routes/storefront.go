package routes

import (
	"cianorte_vendas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathCart     = "/cart"
	PathCheckout = "/checkout"
)

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	cartHandler *handlers.CartHandler,
	checkoutHandler *handlers.CheckoutHandler,
	requireAuth gin.HandlerFunc,
) {
	// Browsing is public.
	rg.GET(PathProducts, catalogHandler.ListProducts)
	rg.GET("/categories", catalogHandler.ListCategories)
	rg.GET("/payment-methods", checkoutHandler.ListPaymentMethods)

	cart := rg.Group(PathCart, requireAuth)
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PATCH("/items/:product_id", cartHandler.UpdateItem)
		cart.DELETE("/items/:product_id", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
	}

	checkout := rg.Group(PathCheckout, requireAuth)
	{
		checkout.POST("", checkoutHandler.Begin)
		checkout.GET("", checkoutHandler.GetSession)
		checkout.POST("/review/confirm", checkoutHandler.ConfirmReview)
		checkout.PUT("/payment-method", checkoutHandler.SelectPaymentMethod)
		checkout.POST("/payment", checkoutHandler.ConfirmPayment)
		checkout.POST("/payment/verify", checkoutHandler.VerifyPayment)
		checkout.DELETE("", checkoutHandler.Cancel)
	}
}
