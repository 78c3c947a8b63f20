package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DrouetDanilo/Inventia/internal/apierror"
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/middleware"
	"github.com/DrouetDanilo/Inventia/internal/service"
)

type DistribuidoresHandler struct{ svc service.DistribuidorService }

func NewDistribuidoresHandler(svc service.DistribuidorService) *DistribuidoresHandler {
	return &DistribuidoresHandler{svc: svc}
}

func (h *DistribuidoresHandler) Crear(c *gin.Context) {
	var req dto.CrearDistribuidorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DistribuidoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistribuidoresHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Pedido godoc
// @Summary Compone el pedido de reabastecimiento para WhatsApp
// @Tags distribuidores
// @Accept json
// @Produce json
// @Param id path string true "ID del distribuidor"
// @Param request body dto.PedidoRequest true "Items del pedido"
// @Success 200 {object} dto.PedidoResponse
// @Failure 400 {object} apierror.APIError
// @Security BearerAuth
// @Router /v1/distribuidores/{id}/pedido [post]
func (h *DistribuidoresHandler) Pedido(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.PedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ComponerPedido(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
