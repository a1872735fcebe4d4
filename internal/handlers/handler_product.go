package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/RamaTay/DecorERP/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to products and stock.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/low-stock", h.listLowStock)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
		products.POST("/:id/unit-sizes/:unitSizeID/stock", h.adjustStock)
	}
}

// createProduct godoc
// @Summary Create a product
// @Description Creates a product with its size variants; every active price list gets a zero-priced row per variant until priced
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "SKU already in use"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create product")
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// getProduct godoc
// @Summary Get a product
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	limit, offset := listParams(c)
	products, err := h.productService.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// listLowStock godoc
// @Summary List low-stock variants
// @Description Lists every size variant whose stock level is below its minimum
// @Tags products
// @Produce  json
// @Success 200 {array} dto.ProductUnitSizeResponse
// @Security BearerAuth
// @Router /products/low-stock [get]
func (h *productHandler) listLowStock(c *gin.Context) {
	variants, err := h.productService.ListLowStockVariants(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list low stock variants")
		return
	}
	res := make([]dto.ProductUnitSizeResponse, len(variants))
	for i, v := range variants {
		res[i] = dto.ProductUnitSizeResponse{
			ProductUnitSizeID: v.ProductUnitSizeID,
			UnitSizeID:        v.UnitSizeID,
			UnitSizeName:      v.UnitSizeName,
			SKU:               v.SKU,
			StockLevel:        v.StockLevel,
			MinStockLevel:     v.MinStockLevel,
			LowStock:          v.IsLowStock(),
		}
	}
	c.JSON(http.StatusOK, res)
}

// updateProduct godoc
// @Summary Update a product
// @Description Updates product fields and reconciles the variant set; stock on surviving variants is preserved
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Product details"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Param   id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

// adjustStock godoc
// @Summary Adjust stock for one variant
// @Description Applies a delta to the variant's stock level; the result may not go negative
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   unitSizeID path string true "Unit size ID"
// @Param   adjustment body dto.AdjustStockRequest true "Stock delta"
// @Success 200 {object} dto.ProductUnitSizeResponse
// @Failure 400 {object} map[string]string "Adjustment would make stock negative"
// @Failure 404 {object} map[string]string "Variant not found"
// @Security BearerAuth
// @Router /products/{id}/unit-sizes/{unitSizeID}/stock [post]
func (h *productHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	variant, err := h.productService.AdjustStock(c.Request.Context(), c.Param("id"), c.Param("unitSizeID"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to adjust stock")
		return
	}

	c.JSON(http.StatusOK, dto.ProductUnitSizeResponse{
		ProductUnitSizeID: variant.ProductUnitSizeID,
		UnitSizeID:        variant.UnitSizeID,
		UnitSizeName:      variant.UnitSizeName,
		SKU:               variant.SKU,
		StockLevel:        variant.StockLevel,
		MinStockLevel:     variant.MinStockLevel,
		LowStock:          variant.IsLowStock(),
	})
}
