package handler

import (
	"net/http"

	"agencyledger/internal/dto"
	"agencyledger/internal/service"

	"github.com/gin-gonic/gin"
)

type OwnersHandler struct{ svc service.OwnerService }

func NewOwnersHandler(svc service.OwnerService) *OwnersHandler { return &OwnersHandler{svc: svc} }

// List godoc
// @Summary      List owners
// @Tags         owners
// @Produce      json
// @Param        all query bool false "Include inactive owners"
// @Success      200 {array} dto.OwnerResponse
// @Router       /api/owners [get]
func (h *OwnersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), queryBool(c, "all"))
	if err != nil {
		writeError(c, err, "Failed to fetch owners")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OwnersHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "ownerId")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to fetch owner")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Create owner
// @Tags         owners
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateOwnerRequest true "Owner"
// @Success      201  {object} dto.OwnerResponse
// @Failure      409  {object} apierror.APIError
// @Router       /api/owners [post]
func (h *OwnersHandler) Create(c *gin.Context) {
	var req dto.CreateOwnerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to create owner")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary      Update owner
// @Tags         owners
// @Accept       json
// @Produce      json
// @Param        ownerId path int                    true "Owner ID"
// @Param        body    body dto.UpdateOwnerRequest true "Owner"
// @Success      200     {object} dto.OwnerResponse
// @Failure      404     {object} apierror.APIError
// @Failure      409     {object} apierror.APIError
// @Router       /api/owners/{ownerId} [put]
func (h *OwnersHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "ownerId")
	if !ok {
		return
	}
	var req dto.UpdateOwnerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err, "Failed to update owner")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OwnersHandler) SetActive(c *gin.Context) {
	id, ok := pathID(c, "ownerId")
	if !ok {
		return
	}
	var req dto.SetActiveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		writeError(c, err, "Failed to update owner")
		return
	}
	c.Status(http.StatusNoContent)
}
