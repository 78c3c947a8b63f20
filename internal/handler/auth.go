package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrouetDanilo/Inventia/internal/apierror"
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Registro godoc
// @Summary Registro de cuenta nueva
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegistroRequest true "Datos de registro"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/auth/registro [post]
func (h *AuthHandler) Registro(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registro(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Inicio de sesion
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Renueva el par de tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
