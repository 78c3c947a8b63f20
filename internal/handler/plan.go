package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/middleware"
	"github.com/DrouetDanilo/Inventia/internal/service"
)

type PlanHandler struct{ svc service.PlanService }

func NewPlanHandler(svc service.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

func (h *PlanHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PlanHandler) Cambiar(c *gin.Context) {
	var req dto.CambiarPlanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cambiar(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
