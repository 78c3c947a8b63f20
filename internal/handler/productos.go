package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrouetDanilo/Inventia/internal/apierror"
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/middleware"
	"github.com/DrouetDanilo/Inventia/internal/service"
)

type ProductosHandler struct {
	productoSvc service.ProductoService
	ventaSvc    service.VentaService
}

func NewProductosHandler(productoSvc service.ProductoService, ventaSvc service.VentaService) *ProductosHandler {
	return &ProductosHandler{productoSvc: productoSvc, ventaSvc: ventaSvc}
}

// Ingresar godoc
// @Summary Ingresa N unidades identicas desde una plantilla
// @Tags productos
// @Accept json
// @Produce json
// @Param request body dto.IngresarUnidadesRequest true "Ingreso"
// @Success 201 {object} dto.ResultadoLote
// @Failure 409 {object} apierror.APIError "Capacidad excedida"
// @Security BearerAuth
// @Router /v1/productos [post]
func (h *ProductosHandler) Ingresar(c *gin.Context) {
	var req dto.IngresarUnidadesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	lote, err := h.productoSvc.Ingresar(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	status := http.StatusCreated
	if lote.Fallidos > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, lote)
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	var filtro dto.ProductoFilter
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.productoSvc.ListarAgrupados(c.Request.Context(), middleware.UserID(c), filtro)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Vender godoc
// @Summary Vende unidades de un grupo (copia al historial y elimina del stock)
// @Tags productos
// @Accept json
// @Produce json
// @Param request body dto.GrupoRequest true "Grupo y cantidad"
// @Success 200 {object} dto.ResultadoLote
// @Failure 409 {object} apierror.APIError "Cantidad insuficiente"
// @Security BearerAuth
// @Router /v1/productos/vender [post]
func (h *ProductosHandler) Vender(c *gin.Context) {
	var req dto.GrupoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	lote, err := h.ventaSvc.Vender(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	status := http.StatusOK
	if lote.Fallidos > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, lote)
}

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	var req dto.GrupoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	lote, err := h.ventaSvc.Eliminar(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	status := http.StatusOK
	if lote.Fallidos > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, lote)
}
