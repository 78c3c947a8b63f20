package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/middleware"
	"github.com/DrouetDanilo/Inventia/internal/service"
)

type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

// Crear godoc
// @Summary Crea una plantilla de producto
// @Tags catalogo
// @Accept json
// @Produce json
// @Param request body dto.CrearPlantillaRequest true "Plantilla"
// @Success 201 {object} dto.PlantillaResponse
// @Failure 409 {object} apierror.APIError "Limite del plan alcanzado"
// @Security BearerAuth
// @Router /v1/catalogo [post]
func (h *CatalogoHandler) Crear(c *gin.Context) {
	var req dto.CrearPlantillaRequest
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

func (h *CatalogoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) Marcas(c *gin.Context) {
	marcas, err := h.svc.Marcas(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marcas": marcas})
}
