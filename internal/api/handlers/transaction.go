package handlers

import (
	"net/http"
	"strconv"

	"lab-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles HTTP requests for the audit ledger
type TransactionHandler struct {
	transactionService service.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService service.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions handles GET /transactions
// @Summary List recent transactions
// @Description Get the newest borrow/return records, newest first
// @Tags transactions
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of records" default(50)
// @Success 200 {array} service.TransactionResponse "Successfully retrieved transactions"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := h.transactionService.ListRecent(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// RecordTransaction handles POST /transactions
// @Summary Record a ledger entry
// @Description Append a borrow or return record without adjusting stock, for manual ledger corrections
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body service.RecordRequest true "Ledger entry"
// @Success 201 {object} service.TransactionResponse "Record appended"
// @Failure 400 {object} ErrorResponse "Missing fields, invalid quantity or invalid kind"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transactions [post]
func (h *TransactionHandler) RecordTransaction(c *gin.Context) {
	var req service.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.transactionService.Record(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListComponentTransactions handles GET /items/:name/transactions
// @Summary List transactions for a component
// @Description Get all borrow/return records referencing a component
// @Tags transactions
// @Accept json
// @Produce json
// @Param name path string true "Component name"
// @Success 200 {array} service.TransactionResponse "Successfully retrieved transactions"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /items/{name}/transactions [get]
func (h *TransactionHandler) ListComponentTransactions(c *gin.Context) {
	records, err := h.transactionService.ListForComponent(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
