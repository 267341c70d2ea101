package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler serves transactions and the statistics computed from them.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	statsService       portssvc.StatsSvc
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, ss portssvc.StatsSvc) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		statsService:       ss,
	}
}

// registerTransactionRoutes registers transaction CRUD and stats routes.
// The static stats segments are matched before the :id parameter.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, ss portssvc.StatsSvc) {
	h := newTransactionHandler(ts, ss)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/stats", h.getStats)
		transactions.GET("/stats/categories", h.getCategoryStats)
		transactions.GET("/summary", h.getSummary)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the user's transactions, newest first, with optional filters
// @Tags transactions
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   category_id query int false "Category filter"
// @Param   account_id query int false "Account filter"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Rows to skip" default(0)
// @Success 200 {array} domain.Transaction
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "query parameters", err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records income or expense and adjusts the account balance atomically
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} ErrorResponse "Invalid input, inactive account or unknown category"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Account belongs to another user"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "request format", err)
		return
	}

	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("account_id", req.AccountID))
	logger.Info("Received request to create transaction", slog.String("type", string(req.TransactionType)), slog.String("amount", req.Amount.String()))

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, txn)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	transactionID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("transaction_id", transactionID)), err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, txn)
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Changes any subset of fields; balances of the old and new account are corrected in one database transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path int true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} ErrorResponse "Invalid input or no fields to update"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Transaction or account not found"
// @Failure 500 {object} ErrorResponse "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	transactionID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "request format", err)
		return
	}

	logger = logger.With(slog.Int64("transaction_id", transactionID))
	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated successfully")
	c.JSON(http.StatusOK, txn)
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes the transaction and reverses its effect on the account balance
// @Tags transactions
// @Param   id path int true "Transaction ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	transactionID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("transaction_id", transactionID))
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted")
	c.Status(http.StatusNoContent)
}

// getStats godoc
// @Summary Income and expense totals
// @Tags transactions
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} domain.TransactionStats
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute statistics"
// @Security BearerAuth
// @Router /transactions/stats [get]
func (h *transactionHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "query parameters", err)
		return
	}

	stats, err := h.statsService.GetTransactionStats(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getCategoryStats godoc
// @Summary Totals per category
// @Description Sums amounts per category and type, largest first. Uncategorized rows are grouped under one label.
// @Tags transactions
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   type query string false "Transaction type" Enums(income, expense)
// @Success 200 {array} domain.CategoryTotal
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute category statistics"
// @Security BearerAuth
// @Router /transactions/stats/categories [get]
func (h *transactionHandler) getCategoryStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	var params dto.CategoryStatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "query parameters", err)
		return
	}

	totals, err := h.statsService.GetCategoryStats(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to compute category statistics")
		return
	}

	c.JSON(http.StatusOK, totals)
}

// getSummary godoc
// @Summary Totals and category breakdown in one response
// @Tags transactions
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   type query string false "Transaction type for the breakdown" Enums(income, expense)
// @Success 200 {object} dto.TransactionSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute summary"
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *transactionHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	var params dto.CategoryStatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "query parameters", err)
		return
	}

	summary, err := h.statsService.GetSummary(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}
