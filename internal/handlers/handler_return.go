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

// returnHandler handles HTTP requests related to returns.
type returnHandler struct {
	returnService portssvc.ReturnSvcFacade
}

func newReturnHandler(rs portssvc.ReturnSvcFacade) *returnHandler {
	return &returnHandler{returnService: rs}
}

// registerReturnRoutes registers routes related to returns.
func registerReturnRoutes(rg *gin.RouterGroup, returnService portssvc.ReturnSvcFacade) {
	h := newReturnHandler(returnService)

	returns := rg.Group("/returns")
	{
		returns.POST("", h.createReturn)
		returns.GET("", h.listReturns)
		returns.GET("/:id", h.getReturn)
		returns.PATCH("/:id/status", h.updateReturnStatus)
	}
}

// createReturn godoc
// @Summary Record a return
// @Description Records a return against a sale or purchase invoice; stock moves only when the return is later completed
// @Tags returns
// @Accept  json
// @Produce  json
// @Param   return body dto.CreateReturnRequest true "Return details"
// @Success 201 {object} dto.ReturnResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Referenced sale or purchase not found"
// @Security BearerAuth
// @Router /returns [post]
func (h *returnHandler) createReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	ret, err := h.returnService.CreateReturn(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create return")
		return
	}

	logger.Info("Return created", slog.String("return_id", ret.ReturnID))
	c.JSON(http.StatusCreated, dto.ToReturnResponse(ret))
}

// getReturn godoc
// @Summary Get a return
// @Tags returns
// @Produce  json
// @Param   id path string true "Return ID"
// @Success 200 {object} dto.ReturnResponse
// @Failure 404 {object} map[string]string "Return not found"
// @Security BearerAuth
// @Router /returns/{id} [get]
func (h *returnHandler) getReturn(c *gin.Context) {
	ret, err := h.returnService.GetReturnByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get return")
		return
	}
	c.JSON(http.StatusOK, dto.ToReturnResponse(ret))
}

// listReturns godoc
// @Summary List returns
// @Tags returns
// @Produce  json
// @Param   kind query string false "Filter by kind (sale or purchase)"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.ReturnResponse
// @Security BearerAuth
// @Router /returns [get]
func (h *returnHandler) listReturns(c *gin.Context) {
	limit, offset := listParams(c)
	kind := domain.ReturnKind(c.Query("kind"))
	returns, err := h.returnService.ListReturns(c.Request.Context(), kind, limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list returns")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReturnResponse(returns))
}

// updateReturnStatus godoc
// @Summary Update return status
// @Description Moves the processing and/or refund status; completing a return moves stock (back in for sale returns, out for purchase returns)
// @Tags returns
// @Accept  json
// @Produce  json
// @Param   id path string true "Return ID"
// @Param   status body dto.UpdateReturnStatusRequest true "Status changes"
// @Success 200 {object} dto.ReturnResponse
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 404 {object} map[string]string "Return not found"
// @Security BearerAuth
// @Router /returns/{id}/status [patch]
func (h *returnHandler) updateReturnStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateReturnStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReturnStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	ret, err := h.returnService.UpdateReturnStatus(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update return status")
		return
	}
	c.JSON(http.StatusOK, dto.ToReturnResponse(ret))
}
