package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/middleware"
	"github.com/DrouetDanilo/Inventia/internal/service"
)

type AsistenteHandler struct{ svc service.AsistenteService }

func NewAsistenteHandler(svc service.AsistenteService) *AsistenteHandler {
	return &AsistenteHandler{svc: svc}
}

// Comando godoc
// @Summary Procesa un comando de voz transcrito
// @Tags asistente
// @Accept json
// @Produce json
// @Param request body dto.ComandoRequest true "Texto dictado"
// @Success 200 {object} dto.ComandoResponse
// @Security BearerAuth
// @Router /v1/asistente/comando [post]
func (h *AsistenteHandler) Comando(c *gin.Context) {
	var req dto.ComandoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	// Always 200: misses and misunderstood commands travel in the body so
	// the client can speak them back.
	resp := h.svc.Procesar(c.Request.Context(), middleware.UserID(c), req)
	c.JSON(http.StatusOK, resp)
}
