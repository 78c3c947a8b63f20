package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DrouetDanilo/Inventia/internal/apierror"
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/middleware"
	"github.com/DrouetDanilo/Inventia/internal/service"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler {
	return &VentasHandler{svc: svc}
}

func (h *VentasHandler) bindFilter(c *gin.Context) (dto.VentaFilter, bool) {
	var filtro dto.VentaFilter
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return filtro, false
	}
	if err := validate.Struct(&filtro); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("periodo o fecha invalidos"))
		return filtro, false
	}
	return filtro, true
}

// Historial godoc
// @Summary Historial de ventas filtrado por periodo
// @Tags ventas
// @Produce json
// @Param periodo query string false "todo | dia | semana | mes"
// @Param fecha query string false "YYYY-MM-DD, solo con periodo=dia"
// @Success 200 {object} dto.HistorialResponse
// @Security BearerAuth
// @Router /v1/ventas [get]
func (h *VentasHandler) Historial(c *gin.Context) {
	filtro, ok := h.bindFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.Historial(c.Request.Context(), middleware.UserID(c), filtro)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) Resumen(c *gin.Context) {
	filtro, ok := h.bindFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), middleware.UserID(c), filtro)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Export streams the filtered history as an XLSX download.
func (h *VentasHandler) Export(c *gin.Context) {
	filtro, ok := h.bindFilter(c)
	if !ok {
		return
	}
	data, err := h.svc.Export(c.Request.Context(), middleware.UserID(c), filtro)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	nombre := fmt.Sprintf("ventas_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
