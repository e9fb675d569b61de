package handler

import (
	"net/http"

	"agencyledger/internal/dto"
	"agencyledger/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionsHandler struct{ svc service.TransactionService }

func NewTransactionsHandler(svc service.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

// Create godoc
// @Summary      Record a single sale line
// @Description  The line is not attached to any bill. The rate is the material's current rate.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateTransactionRequest true "Line"
// @Success      201  {object} dto.TransactionChangeResponse
// @Router       /api/transactions [post]
func (h *TransactionsHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary      Correct a sale line
// @Description  Recomputes the line total and, for billed lines, the bill total.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id   path int                          true "Transaction ID"
// @Param        body body dto.UpdateTransactionRequest true "Line"
// @Success      200  {object} dto.TransactionChangeResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/transactions/{id} [put]
func (h *TransactionsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Delete a sale line
// @Tags         transactions
// @Produce      json
// @Param        id path int true "Transaction ID"
// @Success      200 {object} dto.TransactionChangeResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/transactions/{id} [delete]
func (h *TransactionsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to delete transaction")
		return
	}
	c.JSON(http.StatusOK, resp)
}
