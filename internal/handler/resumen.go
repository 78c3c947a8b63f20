package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DrouetDanilo/Inventia/internal/middleware"
	"github.com/DrouetDanilo/Inventia/internal/service"
)

type ResumenHandler struct{ svc service.ResumenService }

func NewResumenHandler(svc service.ResumenService) *ResumenHandler {
	return &ResumenHandler{svc: svc}
}

// Dashboard godoc
// @Summary Tablero completo: metricas, resumen agregado, top ventas
// @Tags resumen
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Security BearerAuth
// @Router /v1/resumen [get]
func (h *ResumenHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reabastecer lists rows at or below half occupancy, most urgent first.
func (h *ResumenHandler) Reabastecer(c *gin.Context) {
	filas, err := h.svc.Reabastecer(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"productos": filas})
}

func (h *ResumenHandler) MasVendidos(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("top", "5"))
	filas, err := h.svc.MasVendidos(c.Request.Context(), middleware.UserID(c), n)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"productos": filas})
}

// Reporte godoc
// @Summary Reporte de inventario en PDF (solo premium)
// @Tags resumen
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 403 {object} apierror.APIError "Requiere plan premium"
// @Security BearerAuth
// @Router /v1/resumen/reporte [get]
func (h *ResumenHandler) Reporte(c *gin.Context) {
	data, err := h.svc.Reporte(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	nombre := fmt.Sprintf("reporte_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
