package handlers

import (
	"log/slog"
	"net/http"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/RamaTay/DecorERP/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for the simple named catalogs:
// brands, unit sizes and expense categories.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers routes for brands, unit sizes and expense
// categories.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	brands := rg.Group("/brands")
	{
		brands.POST("", h.createBrand)
		brands.GET("", h.listBrands)
		brands.PUT("/:id", h.updateBrand)
		brands.DELETE("/:id", h.deleteBrand)
	}

	unitSizes := rg.Group("/unit-sizes")
	{
		unitSizes.POST("", h.createUnitSize)
		unitSizes.GET("", h.listUnitSizes)
		unitSizes.PUT("/:id", h.updateUnitSize)
		unitSizes.DELETE("/:id", h.deleteUnitSize)
	}

	categories := rg.Group("/expense-categories")
	{
		categories.POST("", h.createExpenseCategory)
		categories.GET("", h.listExpenseCategories)
		categories.PUT("/:id", h.updateExpenseCategory)
		categories.DELETE("/:id", h.deleteExpenseCategory)
	}
}

func bindNamedItem(c *gin.Context) (dto.NamedItemRequest, bool) {
	var req dto.NamedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for catalog request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return req, false
	}
	return req, true
}

// createBrand godoc
// @Summary Create a brand
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   brand body dto.NamedItemRequest true "Brand name"
// @Success 201 {object} dto.NamedItemResponse
// @Failure 409 {object} map[string]string "Name already exists"
// @Security BearerAuth
// @Router /brands [post]
func (h *catalogHandler) createBrand(c *gin.Context) {
	req, ok := bindNamedItem(c)
	if !ok {
		return
	}
	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}
	brand, err := h.catalogService.CreateBrand(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create brand")
		return
	}
	c.JSON(http.StatusCreated, dto.NamedItemResponse{ID: brand.BrandID, Name: brand.Name})
}

// listBrands godoc
// @Summary List brands
// @Tags catalog
// @Produce  json
// @Success 200 {array} dto.NamedItemResponse
// @Security BearerAuth
// @Router /brands [get]
func (h *catalogHandler) listBrands(c *gin.Context) {
	brands, err := h.catalogService.ListBrands(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list brands")
		return
	}
	res := make([]dto.NamedItemResponse, len(brands))
	for i, b := range brands {
		res[i] = dto.NamedItemResponse{ID: b.BrandID, Name: b.Name}
	}
	c.JSON(http.StatusOK, res)
}

// updateBrand godoc
// @Summary Rename a brand
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   id path string true "Brand ID"
// @Param   brand body dto.NamedItemRequest true "New name"
// @Success 200 {object} dto.NamedItemResponse
// @Failure 404 {object} map[string]string "Brand not found"
// @Security BearerAuth
// @Router /brands/{id} [put]
func (h *catalogHandler) updateBrand(c *gin.Context) {
	req, ok := bindNamedItem(c)
	if !ok {
		return
	}
	updaterUserID, ok := mustUserID(c)
	if !ok {
		return
	}
	brand, err := h.catalogService.UpdateBrand(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update brand")
		return
	}
	c.JSON(http.StatusOK, dto.NamedItemResponse{ID: brand.BrandID, Name: brand.Name})
}

// deleteBrand godoc
// @Summary Delete a brand
// @Tags catalog
// @Param   id path string true "Brand ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Brand not found"
// @Security BearerAuth
// @Router /brands/{id} [delete]
func (h *catalogHandler) deleteBrand(c *gin.Context) {
	if err := h.catalogService.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete brand")
		return
	}
	c.Status(http.StatusNoContent)
}

// createUnitSize godoc
// @Summary Create a unit size
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   unitSize body dto.NamedItemRequest true "Unit size name"
// @Success 201 {object} dto.NamedItemResponse
// @Security BearerAuth
// @Router /unit-sizes [post]
func (h *catalogHandler) createUnitSize(c *gin.Context) {
	req, ok := bindNamedItem(c)
	if !ok {
		return
	}
	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}
	us, err := h.catalogService.CreateUnitSize(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create unit size")
		return
	}
	c.JSON(http.StatusCreated, dto.NamedItemResponse{ID: us.UnitSizeID, Name: us.Name})
}

// listUnitSizes godoc
// @Summary List unit sizes
// @Tags catalog
// @Produce  json
// @Success 200 {array} dto.NamedItemResponse
// @Security BearerAuth
// @Router /unit-sizes [get]
func (h *catalogHandler) listUnitSizes(c *gin.Context) {
	sizes, err := h.catalogService.ListUnitSizes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list unit sizes")
		return
	}
	res := make([]dto.NamedItemResponse, len(sizes))
	for i, s := range sizes {
		res[i] = dto.NamedItemResponse{ID: s.UnitSizeID, Name: s.Name}
	}
	c.JSON(http.StatusOK, res)
}

// updateUnitSize godoc
// @Summary Rename a unit size
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   id path string true "Unit size ID"
// @Param   unitSize body dto.NamedItemRequest true "New name"
// @Success 200 {object} dto.NamedItemResponse
// @Security BearerAuth
// @Router /unit-sizes/{id} [put]
func (h *catalogHandler) updateUnitSize(c *gin.Context) {
	req, ok := bindNamedItem(c)
	if !ok {
		return
	}
	updaterUserID, ok := mustUserID(c)
	if !ok {
		return
	}
	us, err := h.catalogService.UpdateUnitSize(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update unit size")
		return
	}
	c.JSON(http.StatusOK, dto.NamedItemResponse{ID: us.UnitSizeID, Name: us.Name})
}

// deleteUnitSize godoc
// @Summary Delete a unit size
// @Tags catalog
// @Param   id path string true "Unit size ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /unit-sizes/{id} [delete]
func (h *catalogHandler) deleteUnitSize(c *gin.Context) {
	if err := h.catalogService.DeleteUnitSize(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete unit size")
		return
	}
	c.Status(http.StatusNoContent)
}

// createExpenseCategory godoc
// @Summary Create an expense category
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   category body dto.NamedItemRequest true "Category name"
// @Success 201 {object} dto.NamedItemResponse
// @Security BearerAuth
// @Router /expense-categories [post]
func (h *catalogHandler) createExpenseCategory(c *gin.Context) {
	req, ok := bindNamedItem(c)
	if !ok {
		return
	}
	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}
	cat, err := h.catalogService.CreateExpenseCategory(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create expense category")
		return
	}
	c.JSON(http.StatusCreated, toNamedCategory(cat))
}

// listExpenseCategories godoc
// @Summary List expense categories
// @Tags catalog
// @Produce  json
// @Success 200 {array} dto.NamedItemResponse
// @Security BearerAuth
// @Router /expense-categories [get]
func (h *catalogHandler) listExpenseCategories(c *gin.Context) {
	cats, err := h.catalogService.ListExpenseCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list expense categories")
		return
	}
	res := make([]dto.NamedItemResponse, len(cats))
	for i := range cats {
		res[i] = toNamedCategory(&cats[i])
	}
	c.JSON(http.StatusOK, res)
}

// updateExpenseCategory godoc
// @Summary Rename an expense category
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   category body dto.NamedItemRequest true "New name"
// @Success 200 {object} dto.NamedItemResponse
// @Security BearerAuth
// @Router /expense-categories/{id} [put]
func (h *catalogHandler) updateExpenseCategory(c *gin.Context) {
	req, ok := bindNamedItem(c)
	if !ok {
		return
	}
	updaterUserID, ok := mustUserID(c)
	if !ok {
		return
	}
	cat, err := h.catalogService.UpdateExpenseCategory(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update expense category")
		return
	}
	c.JSON(http.StatusOK, toNamedCategory(cat))
}

// deleteExpenseCategory godoc
// @Summary Delete an expense category
// @Tags catalog
// @Param   id path string true "Category ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /expense-categories/{id} [delete]
func (h *catalogHandler) deleteExpenseCategory(c *gin.Context) {
	if err := h.catalogService.DeleteExpenseCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete expense category")
		return
	}
	c.Status(http.StatusNoContent)
}

func toNamedCategory(cat *domain.ExpenseCategory) dto.NamedItemResponse {
	return dto.NamedItemResponse{ID: cat.ExpenseCategoryID, Name: cat.Name}
}
