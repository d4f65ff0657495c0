package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/SscSPs/hawala_settlement/internal/dto"
	"github.com/SscSPs/hawala_settlement/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to the transaction ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("/:code", h.getTransaction)
		transactions.POST("/:code/transitions", h.transitionTransaction)
	}

	rg.GET("/agents/:agentID/transactions", h.listAgentTransactions)
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Quotes the conversion against the agent's current rate, assigns a reference code and stores the transfer as PENDING.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No active rate for this pair"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), actor, req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("reference_code", txn.ReferenceCode))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// transitionTransaction godoc
// @Summary Change a transaction's status
// @Description Moves the transaction from fromExpected to toTarget. When the stored status differs, 409 is returned with the current transaction.
// @Tags transactions
// @Accept json
// @Produce json
// @Param code path string true "Reference code or transaction ID"
// @Param transition body dto.TransitionRequest true "Expected and target status"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} dto.ConflictResponse
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /api/v1/transactions/{code}/transitions [post]
func (h *transactionHandler) transitionTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.transactionService.TransitionTransaction(c.Request.Context(), actor, req.ToDomain(c.Param("code")))
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) && txn != nil {
			c.JSON(http.StatusConflict, dto.ConflictResponse{
				Error:   messageOf(err),
				Current: dto.ToTransactionResponse(txn),
			})
			return
		}
		respondError(c, err, "Failed to change transaction status")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param code path string true "Reference code or transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions/{code} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), actor, c.Param("code"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listAgentTransactions godoc
// @Summary List an agent's transactions
// @Description Newest first, paginated with an opaque nextToken.
// @Tags transactions
// @Produce json
// @Param agentID path string true "Agent ID"
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size (1-100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/agents/{agentID}/transactions [get]
func (h *transactionHandler) listAgentTransactions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.transactionService.ListAgentTransactions(c.Request.Context(), actor, c.Param("agentID"), params.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page))
}
