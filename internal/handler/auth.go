package handler

import (
	"errors"
	"net/http"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/middleware"
	"agencyledger/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Operator login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		h.unauthorized(c, err, service.ErrInvalidCredentials)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.unauthorized(c, err, service.ErrInvalidRefresh)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the operator behind the access token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("not authenticated"))
		return
	}
	c.JSON(http.StatusOK, dto.OperatorResponse{OperatorID: claims.OperatorID, Username: claims.Username})
}

func (h *AuthHandler) unauthorized(c *gin.Context, err, expected error) {
	if errors.Is(err, expected) {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	writeError(c, err, "Authentication failed")
}
