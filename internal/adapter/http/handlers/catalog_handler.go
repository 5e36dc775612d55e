package handlers

import (
	"log"
	"net/http"
	"strconv"

	response "cianorte_vendas/internal/adapter/http/dto/response"
	"cianorte_vendas/internal/usecase"
	"cianorte_vendas/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves product browsing. Public routes; the catalog
// collaborator owns the data.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	category := c.Query("category")

	products, err := h.usecase.ListProducts(c.Request.Context(), page, pageSize, category)
	if err != nil {
		log.Printf("[catalog][handler] list products failed page=%d err=%v", page, err)
		appErr := pkg.NewDomainError("CATALOG_UNAVAILABLE", "Catalog service unavailable", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductPage(products))
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list categories failed err=%v", err)
		appErr := pkg.NewDomainError("CATALOG_UNAVAILABLE", "Catalog service unavailable", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, categories)
}
