package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/infra"
	"github.com/DrouetDanilo/Inventia/internal/middleware"
	"github.com/DrouetDanilo/Inventia/internal/service"
)

const prefillCacheTTL = 24 * time.Hour

// ScannerHandler serves the barcode flow: a prefill lookup against the
// public product database (cached in Redis) and the quick admission that
// skips the template form.
type ScannerHandler struct {
	off         *infra.OpenFoodFactsClient
	rdb         *redis.Client
	productoSvc service.ProductoService
}

func NewScannerHandler(off *infra.OpenFoodFactsClient, rdb *redis.Client, productoSvc service.ProductoService) *ScannerHandler {
	return &ScannerHandler{off: off, rdb: rdb, productoSvc: productoSvc}
}

// Prefill godoc
// @Summary Consulta un codigo de barras para prellenar el formulario
// @Tags scanner
// @Produce json
// @Param codigo path string true "Codigo de barras"
// @Success 200 {object} dto.PrefillResponse
// @Security BearerAuth
// @Router /v1/scanner/{codigo} [get]
func (h *ScannerHandler) Prefill(c *gin.Context) {
	codigo := c.Param("codigo")
	ctx := c.Request.Context()
	cacheKey := "scan:" + codigo

	infra.MetricEscaneos.Inc()

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PrefillResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — public database lookup (degrades to empty)
	producto := h.off.Buscar(ctx, codigo)
	resp := dto.PrefillResponse{
		Encontrado:      producto.Encontrado,
		TipoProducto:    producto.Nombre,
		MarcaFabricante: producto.Marca,
		Categoria:       producto.Categoria,
	}

	// 3. Populate cache — best effort, only for hits so a downed remote
	// doesn't pin empty entries for a day
	if resp.Encontrado {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, prefillCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Ingreso godoc
// @Summary Ingreso rapido de unidades escaneadas
// @Tags scanner
// @Accept json
// @Produce json
// @Param request body dto.IngresoRapidoRequest true "Unidades"
// @Success 201 {object} dto.ResultadoLote
// @Failure 409 {object} apierror.APIError "Capacidad excedida"
// @Security BearerAuth
// @Router /v1/scanner/ingreso [post]
func (h *ScannerHandler) Ingreso(c *gin.Context) {
	var req dto.IngresoRapidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	lote, err := h.productoSvc.IngresoRapido(c.Request.Context(), middleware.UserID(c), req)
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
