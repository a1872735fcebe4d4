package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/RamaTay/DecorERP/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers, including the
// account view aggregating their sales and payments.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	saleService     portssvc.SaleSvcFacade
	paymentService  portssvc.PaymentSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade, ss portssvc.SaleSvcFacade, ps portssvc.PaymentSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs, saleService: ss, paymentService: ps}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, saleService portssvc.SaleSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newCustomerHandler(customerService, saleService, paymentService)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomer)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)
		customers.GET("/:id/account", h.getCustomerAccount)
		customers.GET("/:id/sales", h.listCustomerSales)
		customers.GET("/:id/payments", h.listCustomerPayments)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create customer")
		return
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.CustomerResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	limit, offset := listParams(c)
	customers, err := h.customerService.ListCustomers(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// updateCustomer godoc
// @Summary Update a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Customer details"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := mustUserID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Tags customers
// @Param   id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}

// getCustomerAccount godoc
// @Summary Get a customer's account summary
// @Description Totals of completed sales, recorded payments and the outstanding balance, all in USD
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.CustomerAccountResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id}/account [get]
func (h *customerHandler) getCustomerAccount(c *gin.Context) {
	summary, err := h.customerService.GetCustomerAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get customer account")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerAccountResponse(summary))
}

// listCustomerSales godoc
// @Summary List a customer's sales
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.SaleResponse
// @Security BearerAuth
// @Router /customers/{id}/sales [get]
func (h *customerHandler) listCustomerSales(c *gin.Context) {
	limit, offset := listParams(c)
	sales, err := h.saleService.ListSalesByCustomer(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list customer sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSaleResponse(sales))
}

// listCustomerPayments godoc
// @Summary List a customer's payments
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Offset"
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /customers/{id}/payments [get]
func (h *customerHandler) listCustomerPayments(c *gin.Context) {
	limit, offset := listParams(c)
	payments, err := h.paymentService.ListPaymentsByCustomer(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list customer payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}
