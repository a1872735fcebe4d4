package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/RamaTay/DecorERP/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler handles HTTP requests related to exchange rates and
// conversions.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers routes related to the currency engine.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.updateDefaultRate)
		rates.GET("", h.listExchangeRates)
		rates.GET("/current", h.getCurrentRate)
		rates.GET("/for-date", h.getRateForDate)
	}
	rg.POST("/currency/convert", h.convertAmount)
}

// updateDefaultRate godoc
// @Summary Set a new default exchange rate
// @Description Appends a new SYP-per-USD rate and atomically makes it the default
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   rate body dto.UpdateExchangeRateRequest true "New default rate"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *currencyHandler) updateDefaultRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDefaultRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	rate, err := h.currencyService.UpdateDefaultRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update default exchange rate")
		return
	}

	logger.Info("Default exchange rate updated", slog.String("rate_id", rate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// getCurrentRate godoc
// @Summary Get the current default rate
// @Description Returns the effective SYP-per-USD rate; bootstrap is true when the history is empty
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.CurrentRateResponse
// @Security BearerAuth
// @Router /exchange-rates/current [get]
func (h *currencyHandler) getCurrentRate(c *gin.Context) {
	rate, bootstrap, err := h.currencyService.CurrentRate(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to get current exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.CurrentRateResponse{Rate: rate, Bootstrap: bootstrap})
}

// getRateForDate godoc
// @Summary Get the rate in effect on a date
// @Description Resolves the default SYP-per-USD rate that was in effect at the given date, for pre-populating backdated transactions
// @Tags currency
// @Produce  json
// @Param   date query string true "Date, RFC 3339 or YYYY-MM-DD"
// @Success 200 {object} dto.RateForDateResponse
// @Failure 400 {object} map[string]string "Missing or malformed date"
// @Security BearerAuth
// @Router /exchange-rates/for-date [get]
func (h *currencyHandler) getRateForDate(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC 3339 or YYYY-MM-DD"})
		return
	}

	rate, err := h.currencyService.RateForDate(c.Request.Context(), t)
	if err != nil {
		respondServiceError(c, err, "Failed to get exchange rate for date")
		return
	}
	c.JSON(http.StatusOK, dto.RateForDateResponse{Rate: rate, AsOf: t})
}

// listExchangeRates godoc
// @Summary List exchange rate history
// @Description Lists the append-only rate history, newest first
// @Tags currency
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.ExchangeRateResponse
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *currencyHandler) listExchangeRates(c *gin.Context) {
	limit, offset := listParams(c)
	rates, err := h.currencyService.ListExchangeRates(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// convertAmount godoc
// @Summary Convert an amount between USD and SYP
// @Description Converts at the current default rate unless an explicit rate is given, and returns a display string
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertAmountRequest true "Conversion details"
// @Success 200 {object} dto.ConvertAmountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /currency/convert [post]
func (h *currencyHandler) convertAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	converted, err := h.currencyService.Convert(ctx, req.Amount, req.From, req.To, req.Rate)
	if err != nil {
		respondServiceError(c, err, "Failed to convert amount")
		return
	}

	// Formatting works from the canonical USD figure.
	rate := decimalOrCurrent(c, h.currencyService, req.Rate)
	usdAmount := req.Amount
	if req.From == domain.CurrencySYP {
		usdAmount, err = h.currencyService.Convert(ctx, req.Amount, domain.CurrencySYP, domain.CurrencyUSD, req.Rate)
		if err != nil {
			respondServiceError(c, err, "Failed to convert amount")
			return
		}
	}
	formatted, err := h.currencyService.Format(ctx, usdAmount, req.To, rate)
	if err != nil {
		respondServiceError(c, err, "Failed to format amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertAmountResponse{Amount: converted, Formatted: formatted})
}

// decimalOrCurrent resolves an optional explicit rate to a concrete one.
func decimalOrCurrent(c *gin.Context, svc portssvc.CurrencySvcFacade, rate *decimal.Decimal) decimal.Decimal {
	if rate != nil {
		return *rate
	}
	current, _, err := svc.CurrentRate(c.Request.Context())
	if err != nil {
		return domain.BootstrapExchangeRate
	}
	return current
}
