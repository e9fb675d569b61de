package handler

import (
	"net/http"

	"agencyledger/internal/dto"
	"agencyledger/internal/service"

	"github.com/gin-gonic/gin"
)

type MaterialsHandler struct{ svc service.MaterialService }

func NewMaterialsHandler(svc service.MaterialService) *MaterialsHandler {
	return &MaterialsHandler{svc: svc}
}

// List godoc
// @Summary      List materials
// @Tags         materials
// @Produce      json
// @Param        all query bool false "Include inactive materials"
// @Success      200 {array}  dto.MaterialResponse
// @Router       /api/materials [get]
func (h *MaterialsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), queryBool(c, "all"))
	if err != nil {
		writeError(c, err, "Failed to fetch materials")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Create material
// @Description  Unit defaults to "ton". A duplicate name returns 409.
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateMaterialRequest true "Material"
// @Success      201  {object} dto.MaterialResponse
// @Failure      409  {object} apierror.APIError
// @Router       /api/materials [post]
func (h *MaterialsHandler) Create(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to create material")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary      Update material
// @Description  Changes the catalog rate. Past transactions keep their rate_at_sale.
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id   path int                       true "Material ID"
// @Param        body body dto.UpdateMaterialRequest true "Material"
// @Success      200  {object} dto.MaterialResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /api/materials/{id} [put]
func (h *MaterialsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err, "Failed to update material")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetActive godoc
// @Summary      Activate or deactivate material
// @Tags         materials
// @Accept       json
// @Param        id   path int                  true "Material ID"
// @Param        body body dto.SetActiveRequest true "Flag"
// @Success      204
// @Router       /api/materials/{id}/active [patch]
func (h *MaterialsHandler) SetActive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SetActiveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		writeError(c, err, "Failed to update material")
		return
	}
	c.Status(http.StatusNoContent)
}
