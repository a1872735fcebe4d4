package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/RamaTay/DecorERP/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests related to purchase invoices.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers routes related to purchase invoices.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchase)
		purchases.PATCH("/:id/status", h.updatePurchaseStatus)
		purchases.GET("/:id/status-logs", h.listPurchaseStatusLogs)
	}
}

// createPurchase godoc
// @Summary Record a purchase invoice
// @Description Records a supplier invoice in USD; invoice numbers are unique
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Supplier or variant not found"
// @Failure 409 {object} map[string]string "Invoice number already recorded"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create purchase")
		return
	}

	logger.Info("Purchase created", slog.String("purchase_invoice_id", purchase.PurchaseInvoiceID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// getPurchase godoc
// @Summary Get a purchase invoice
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase invoice ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} map[string]string "Purchase not found"
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List purchase invoices
// @Tags purchases
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.PurchaseResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	limit, offset := listParams(c)
	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list purchases")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPurchaseResponse(purchases))
}

// updatePurchaseStatus godoc
// @Summary Update purchase status
// @Description Moves the receiving and/or payment status; every change appends a status log entry. Cancelling requires a reason.
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   id path string true "Purchase invoice ID"
// @Param   status body dto.UpdatePurchaseStatusRequest true "Status changes"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid transition or missing reason"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Security BearerAuth
// @Router /purchases/{id}/status [patch]
func (h *purchaseHandler) updatePurchaseStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePurchaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePurchaseStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.UpdatePurchaseStatus(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update purchase status")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// listPurchaseStatusLogs godoc
// @Summary List a purchase's status history
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase invoice ID"
// @Success 200 {array} dto.PurchaseStatusLogResponse
// @Security BearerAuth
// @Router /purchases/{id}/status-logs [get]
func (h *purchaseHandler) listPurchaseStatusLogs(c *gin.Context) {
	logs, err := h.purchaseService.ListPurchaseStatusLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list purchase status logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPurchaseStatusLogResponse(logs))
}
