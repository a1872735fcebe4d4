package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/RamaTay/DecorERP/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales and their payments.
type saleHandler struct {
	saleService    portssvc.SaleSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade, ps portssvc.PaymentSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss, paymentService: ps}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newSaleHandler(saleService, paymentService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
		sales.POST("/:id/cancel", h.cancelSale)
		sales.GET("/:id/payments", h.listSalePayments)
	}
	rg.POST("/payments", h.recordPayment)
	rg.GET("/payments/:id", h.getPayment)
}

// createSale godoc
// @Summary Ring up a sale
// @Description Creates a completed sale. Prices come from the customer's price list; SYP sales freeze the current rate and round unit prices up to the nearest hundred pounds. Stock is decremented per line.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Validation error, insufficient stock or unpriced item"
// @Failure 404 {object} map[string]string "Customer, price list or variant not found"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create sale")
		return
	}

	logger.Info("Sale created", slog.String("sale_id", sale.SaleID))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce  json
// @Param   id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	sale, err := h.saleService.GetSaleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Tags sales
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.SaleResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	limit, offset := listParams(c)
	sales, err := h.saleService.ListSales(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSaleResponse(sales))
}

// cancelSale godoc
// @Summary Cancel a sale
// @Description Voids a completed sale and restores the stock its items consumed
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   id path string true "Sale ID"
// @Param   cancellation body dto.CancelSaleRequest true "Cancellation reason"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Sale is not in completed state"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /sales/{id}/cancel [post]
func (h *saleHandler) cancelSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CancelSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CancelSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.CancelSale(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to cancel sale")
		return
	}

	logger.Info("Sale cancelled", slog.String("sale_id", sale.SaleID))
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// listSalePayments godoc
// @Summary List payments recorded against a sale
// @Tags sales
// @Produce  json
// @Param   id path string true "Sale ID"
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /sales/{id}/payments [get]
func (h *saleHandler) listSalePayments(c *gin.Context) {
	payments, err := h.paymentService.ListPaymentsBySale(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list sale payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// recordPayment godoc
// @Summary Record a customer payment
// @Description Records a payment against a completed sale; SYP payments convert to USD at the current rate, and the payment may not exceed the outstanding balance
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Overpayment or validation error"
// @Failure 404 {object} map[string]string "Sale not found"
// @Security BearerAuth
// @Router /payments [post]
func (h *saleHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *saleHandler) getPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
