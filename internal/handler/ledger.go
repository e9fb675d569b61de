package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"agencyledger/internal/dto"
	"agencyledger/internal/infra"
	"agencyledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type LedgerHandler struct {
	ledger   service.LedgerService
	payments service.PaymentService
	owners   service.OwnerService
}

func NewLedgerHandler(ledger service.LedgerService, payments service.PaymentService, owners service.OwnerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, payments: payments, owners: owners}
}

// Ledger godoc
// @Summary      Owner ledger
// @Description  Every sale line, pass charge and payment of the owner, oldest first,
// @Description  with the running balance after each row.
// @Tags         ledger
// @Produce      json
// @Param        ownerId path int true "Owner ID"
// @Success      200 {array}  dto.LedgerEntryResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/owners/{ownerId}/ledger [get]
func (h *LedgerHandler) Ledger(c *gin.Context) {
	id, ok := pathID(c, "ownerId")
	if !ok {
		return
	}
	resp, err := h.ledger.OwnerLedger(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to fetch ledger")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordPayment godoc
// @Summary      Record payment
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        ownerId path int                      true "Owner ID"
// @Param        body    body dto.RecordPaymentRequest true "Payment"
// @Success      201     {object} dto.PaymentResponse
// @Failure      400     {object} apierror.APIError
// @Failure      404     {object} apierror.APIError
// @Router       /api/owners/{ownerId}/payments [post]
func (h *LedgerHandler) RecordPayment(c *gin.Context) {
	id, ok := pathID(c, "ownerId")
	if !ok {
		return
	}
	var req dto.RecordPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.payments.Record(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Export godoc
// @Summary      Export owner ledger
// @Tags         ledger
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        ownerId path int true "Owner ID"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /api/owners/{ownerId}/ledger/export [get]
func (h *LedgerHandler) Export(c *gin.Context) {
	id, ok := pathID(c, "ownerId")
	if !ok {
		return
	}
	owner, err := h.owners.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to export ledger")
		return
	}
	entries, err := h.ledger.OwnerLedger(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to export ledger")
		return
	}
	sendXLSX(c, fmt.Sprintf("ledger_%d.xlsx", id), ledgerSheet(owner.Name, entries))
}

func ledgerSheet(ownerName string, entries []dto.LedgerEntryResponse) infra.Sheet {
	s := infra.Sheet{
		Name:    "Ledger",
		Title:   ownerName + " ledger",
		Columns: []string{"Date", "Type", "Description", "Vehicle", "Quantity", "Rate", "Credit", "Debit", "Balance"},
		Rows:    make([][]interface{}, len(entries)),
	}
	for i, e := range entries {
		s.Rows[i] = []interface{}{
			e.EntryDate.Format("2006-01-02 15:04"),
			e.EntryType,
			e.Description,
			e.VehicleNumber,
			e.Quantity,
			e.RateAtSale,
			e.CreditAmount,
			e.DebitAmount,
			e.Balance,
		}
	}
	return s
}

// sendXLSX renders the workbook before writing headers so a failure can
// still answer with JSON.
func sendXLSX(c *gin.Context, filename string, sheets ...infra.Sheet) {
	var buf bytes.Buffer
	if err := infra.WriteXLSX(&buf, sheets...); err != nil {
		log.Error().Err(err).Str("file", filename).Msg("xlsx export failed")
		writeError(c, err, "Failed to build export")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
