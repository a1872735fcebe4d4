package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/RamaTay/DecorERP/internal/middleware"
	"github.com/gin-gonic/gin"
)

// priceListHandler handles HTTP requests related to price lists.
type priceListHandler struct {
	priceListService portssvc.PriceListSvcFacade
}

func newPriceListHandler(ps portssvc.PriceListSvcFacade) *priceListHandler {
	return &priceListHandler{priceListService: ps}
}

// registerPriceListRoutes registers routes related to price lists.
func registerPriceListRoutes(rg *gin.RouterGroup, priceListService portssvc.PriceListSvcFacade) {
	h := newPriceListHandler(priceListService)

	lists := rg.Group("/price-lists")
	{
		lists.POST("", h.createPriceList)
		lists.GET("", h.listPriceLists)
		lists.GET("/:id", h.getPriceList)
		lists.PUT("/:id", h.updatePriceList)
		lists.PUT("/:id/items", h.setPriceListItems)
		lists.DELETE("/:id", h.deletePriceList)
	}
}

// createPriceList godoc
// @Summary Create a price list
// @Description Creates a price tier seeded with a zero-priced row for every product variant
// @Tags price lists
// @Accept  json
// @Produce  json
// @Param   priceList body dto.CreatePriceListRequest true "Price list details"
// @Success 201 {object} dto.PriceListResponse
// @Failure 409 {object} map[string]string "Name already exists"
// @Security BearerAuth
// @Router /price-lists [post]
func (h *priceListHandler) createPriceList(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePriceList", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	list, err := h.priceListService.CreatePriceList(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create price list")
		return
	}

	logger.Info("Price list created", slog.String("price_list_id", list.PriceListID))
	c.JSON(http.StatusCreated, dto.ToPriceListResponse(list))
}

// getPriceList godoc
// @Summary Get a price list
// @Tags price lists
// @Produce  json
// @Param   id path string true "Price list ID"
// @Success 200 {object} dto.PriceListResponse
// @Failure 404 {object} map[string]string "Price list not found"
// @Security BearerAuth
// @Router /price-lists/{id} [get]
func (h *priceListHandler) getPriceList(c *gin.Context) {
	list, err := h.priceListService.GetPriceListByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get price list")
		return
	}
	c.JSON(http.StatusOK, dto.ToPriceListResponse(list))
}

// listPriceLists godoc
// @Summary List price lists
// @Tags price lists
// @Produce  json
// @Success 200 {array} dto.PriceListResponse
// @Security BearerAuth
// @Router /price-lists [get]
func (h *priceListHandler) listPriceLists(c *gin.Context) {
	lists, err := h.priceListService.ListPriceLists(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list price lists")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPriceListResponse(lists))
}

// updatePriceList godoc
// @Summary Update a price list
// @Description Changes name, description or active status
// @Tags price lists
// @Accept  json
// @Produce  json
// @Param   id path string true "Price list ID"
// @Param   priceList body dto.UpdatePriceListRequest true "Price list details"
// @Success 200 {object} dto.PriceListResponse
// @Failure 404 {object} map[string]string "Price list not found"
// @Security BearerAuth
// @Router /price-lists/{id} [put]
func (h *priceListHandler) updatePriceList(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePriceList", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	list, err := h.priceListService.UpdatePriceList(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update price list")
		return
	}
	c.JSON(http.StatusOK, dto.ToPriceListResponse(list))
}

// setPriceListItems godoc
// @Summary Set prices on a price list
// @Description Upserts USD prices for product variants; a changed price records the previous one and when it changed
// @Tags price lists
// @Accept  json
// @Produce  json
// @Param   id path string true "Price list ID"
// @Param   items body dto.SetPriceListItemsRequest true "Prices to set"
// @Success 200 {object} dto.PriceListResponse
// @Failure 400 {object} map[string]string "Negative price or validation error"
// @Failure 404 {object} map[string]string "Price list not found"
// @Security BearerAuth
// @Router /price-lists/{id}/items [put]
func (h *priceListHandler) setPriceListItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetPriceListItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetPriceListItems", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	list, err := h.priceListService.SetPriceListItems(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to set price list items")
		return
	}
	c.JSON(http.StatusOK, dto.ToPriceListResponse(list))
}

// deletePriceList godoc
// @Summary Delete a price list
// @Tags price lists
// @Param   id path string true "Price list ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Price list not found"
// @Security BearerAuth
// @Router /price-lists/{id} [delete]
func (h *priceListHandler) deletePriceList(c *gin.Context) {
	if err := h.priceListService.DeletePriceList(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete price list")
		return
	}
	c.Status(http.StatusNoContent)
}
