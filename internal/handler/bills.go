package handler

import (
	"net/http"
	"path/filepath"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/service"

	"github.com/gin-gonic/gin"
)

type BillsHandler struct{ svc service.BillService }

func NewBillsHandler(svc service.BillService) *BillsHandler { return &BillsHandler{svc: svc} }

// Create godoc
// @Summary      Create bill
// @Description  Records every line at the current catalog rate, optionally a pass charge,
// @Description  and assigns the next daily bill number. All or nothing. The printable
// @Description  document is generated after commit; its outcome is reported in "document".
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateBillRequest true "Bill"
// @Success      201  {object} dto.CreateBillResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      500  {object} apierror.APIError
// @Router       /api/bills [post]
func (h *BillsHandler) Create(c *gin.Context) {
	var req dto.CreateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to create bill")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List bills
// @Tags         bills
// @Produce      json
// @Param        owner_id query int    false "Owner ID"
// @Param        from     query string false "From date (YYYY-MM-DD)"
// @Param        to       query string false "To date (YYYY-MM-DD)"
// @Param        limit    query int    false "Max rows" default(100)
// @Success      200 {array} dto.BillResponse
// @Router       /api/bills [get]
func (h *BillsHandler) List(c *gin.Context) {
	var filter dto.BillFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query: "+err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("limit must be between 1 and 500"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, "Failed to fetch bills")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Get bill with items
// @Tags         bills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} dto.BillDetailResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/bills/{id} [get]
func (h *BillsHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to fetch bill")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Download godoc
// @Summary      Download bill PDF
// @Tags         bills
// @Produce      application/pdf
// @Param        id path int true "Bill ID"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /api/bills/{id}/download [get]
func (h *BillsHandler) Download(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.DocumentPath(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to fetch bill document")
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// Regenerate godoc
// @Summary      Regenerate bill PDF
// @Description  Renders the document again, e.g. after a failed first attempt.
// @Tags         bills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} dto.DocumentOutcome
// @Failure      404 {object} apierror.APIError
// @Router       /api/bills/{id}/document [post]
func (h *BillsHandler) Regenerate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.RegenerateDocument(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to generate bill document")
		return
	}
	c.JSON(http.StatusOK, resp)
}
