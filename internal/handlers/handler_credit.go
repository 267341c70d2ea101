package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// creditHandler handles HTTP requests related to credits and their payments.
type creditHandler struct {
	creditService portssvc.CreditSvcFacade
}

func newCreditHandler(cs portssvc.CreditSvcFacade) *creditHandler {
	return &creditHandler{creditService: cs}
}

// registerCreditRoutes registers routes related to credits.
func registerCreditRoutes(rg *gin.RouterGroup, creditService portssvc.CreditSvcFacade) {
	h := newCreditHandler(creditService)

	credits := rg.Group("/credits")
	{
		credits.GET("", h.listCredits)
		credits.POST("", h.createCredit)
		credits.GET("/:id", h.getCredit)
		credits.PUT("/:id", h.updateCredit)
		credits.DELETE("/:id", h.deleteCredit)
		credits.GET("/:id/stats", h.getCreditStats)
		credits.GET("/:id/payments", h.listPayments)
		credits.POST("/:id/payments", h.makePayment)
		credits.POST("/:id/payment", h.makePayment)
	}
}

// listCredits godoc
// @Summary List credits
// @Description Lists active credits with their derived stats. A credit whose stats cannot be computed carries stats_error instead.
// @Tags credits
// @Produce  json
// @Success 200 {array} dto.CreditWithStats
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list credits"
// @Security BearerAuth
// @Router /credits [get]
func (h *creditHandler) listCredits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	credits, err := h.creditService.ListCredits(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list credits")
		return
	}

	c.JSON(http.StatusOK, credits)
}

// createCredit godoc
// @Summary Create a credit
// @Tags credits
// @Accept  json
// @Produce  json
// @Param   credit body dto.CreateCreditRequest true "Credit details"
// @Success 201 {object} dto.CreditWithStats
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create credit"
// @Security BearerAuth
// @Router /credits [post]
func (h *creditHandler) createCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "request format", err)
		return
	}

	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	credit, err := h.creditService.CreateCredit(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create credit")
		return
	}

	logger.Info("Credit created successfully", slog.Int64("credit_id", credit.CreditID))
	c.JSON(http.StatusCreated, dto.NewCreditWithStats(*credit))
}

// getCredit godoc
// @Summary Get a credit by ID
// @Tags credits
// @Produce  json
// @Param   id path int true "Credit ID"
// @Success 200 {object} dto.CreditWithStats
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Credit not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve credit"
// @Security BearerAuth
// @Router /credits/{id} [get]
func (h *creditHandler) getCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	creditID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	credit, err := h.creditService.GetCreditByID(c.Request.Context(), userID, creditID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("credit_id", creditID)), err, "Failed to retrieve credit")
		return
	}

	c.JSON(http.StatusOK, dto.NewCreditWithStats(*credit))
}

// updateCredit godoc
// @Summary Update a credit
// @Tags credits
// @Accept  json
// @Produce  json
// @Param   id path int true "Credit ID"
// @Param   credit body dto.UpdateCreditRequest true "Fields to update"
// @Success 200 {object} dto.CreditWithStats
// @Failure 400 {object} ErrorResponse "Invalid input, no fields to update or inactive credit"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Credit not found"
// @Failure 500 {object} ErrorResponse "Failed to update credit"
// @Security BearerAuth
// @Router /credits/{id} [put]
func (h *creditHandler) updateCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	creditID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	var req dto.UpdateCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "request format", err)
		return
	}

	credit, err := h.creditService.UpdateCredit(c.Request.Context(), userID, creditID, req)
	if err != nil {
		respondError(c, logger.With(slog.Int64("credit_id", creditID)), err, "Failed to update credit")
		return
	}

	c.JSON(http.StatusOK, dto.NewCreditWithStats(*credit))
}

// deleteCredit godoc
// @Summary Deactivate a credit
// @Tags credits
// @Param   id path int true "Credit ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Credit not found"
// @Failure 500 {object} ErrorResponse "Failed to deactivate credit"
// @Security BearerAuth
// @Router /credits/{id} [delete]
func (h *creditHandler) deleteCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	creditID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	if err := h.creditService.DeactivateCredit(c.Request.Context(), userID, creditID); err != nil {
		respondError(c, logger.With(slog.Int64("credit_id", creditID)), err, "Failed to deactivate credit")
		return
	}

	c.Status(http.StatusNoContent)
}

// getCreditStats godoc
// @Summary Derived credit figures
// @Description Paid amount, progress, remaining payment count and interest estimates
// @Tags credits
// @Produce  json
// @Param   id path int true "Credit ID"
// @Success 200 {object} domain.CreditStats
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Credit not found"
// @Failure 422 {object} ErrorResponse "Stats undefined for this credit (zero monthly payment)"
// @Failure 500 {object} ErrorResponse "Failed to compute credit stats"
// @Security BearerAuth
// @Router /credits/{id}/stats [get]
func (h *creditHandler) getCreditStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	creditID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	stats, err := h.creditService.GetCreditStats(c.Request.Context(), userID, creditID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("credit_id", creditID)), err, "Failed to compute credit stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// listPayments godoc
// @Summary List payments of a credit
// @Tags credits
// @Produce  json
// @Param   id path int true "Credit ID"
// @Success 200 {array} domain.CreditPayment
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Credit not found"
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Security BearerAuth
// @Router /credits/{id}/payments [get]
func (h *creditHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	creditID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	payments, err := h.creditService.ListPayments(c.Request.Context(), userID, creditID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("credit_id", creditID)), err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

// makePayment godoc
// @Summary Make a payment
// @Description Splits the amount into interest and principal, lowers the remaining amount and moves the next payment date one month forward
// @Tags credits
// @Accept  json
// @Produce  json
// @Param   id path int true "Credit ID"
// @Param   payment body dto.MakePaymentRequest true "Payment amount"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or inactive credit"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Credit not found"
// @Failure 500 {object} ErrorResponse "Failed to record payment"
// @Security BearerAuth
// @Router /credits/{id}/payments [post]
// @Router /credits/{id}/payment [post]
func (h *creditHandler) makePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	creditID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	var req dto.MakePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "request format", err)
		return
	}

	logger = logger.With(slog.Int64("credit_id", creditID))
	credit, payment, err := h.creditService.MakePayment(c.Request.Context(), userID, creditID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Credit payment recorded",
		slog.String("principal", payment.PrincipalAmount.String()),
		slog.String("interest", payment.InterestAmount.String()))
	c.JSON(http.StatusCreated, dto.PaymentResponse{Credit: dto.NewCreditWithStats(*credit), Payment: *payment})
}
