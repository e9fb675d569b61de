package handler

import (
	"net/http"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/service"

	"github.com/gin-gonic/gin"
)

type VehiclesHandler struct{ svc service.VehicleService }

func NewVehiclesHandler(svc service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{svc: svc}
}

// Suggest godoc
// @Summary      Vehicle suggestions
// @Description  Up to 5 plates of the owner matching q, most recently used first.
// @Tags         vehicles
// @Produce      json
// @Param        owner_id query int    true  "Owner ID"
// @Param        q        query string false "Partial plate"
// @Success      200 {array} dto.VehicleResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/vehicles [get]
func (h *VehiclesHandler) Suggest(c *gin.Context) {
	var filter dto.VehicleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("owner_id must be a number"))
		return
	}
	resp, err := h.svc.Suggest(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, "Failed to fetch vehicles")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) Create(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to save vehicle")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VehiclesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "Failed to delete vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Vehicle deleted"})
}
