package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// IngresarUnidadesRequest admits N identical units copied from a template.
type IngresarUnidadesRequest struct {
	PlantillaID    string `json:"plantilla_id"    validate:"required,uuid"`
	FechaCaducidad string `json:"fecha_caducidad" validate:"required,datetime=2006-01-02"`
	Cantidad       int    `json:"cantidad"        validate:"required,gt=0"`
}

// GrupoRequest identifies a display group of identical units for sale or
// removal: same nombre, marca, precio and expiry.
type GrupoRequest struct {
	TipoProducto    string          `json:"tipo_producto"    validate:"required"`
	MarcaFabricante string          `json:"marca_fabricante" validate:"required"`
	Precio          decimal.Decimal `json:"precio"`
	FechaCaducidad  string          `json:"fecha_caducidad"  validate:"required,datetime=2006-01-02"`
	Cantidad        int             `json:"cantidad"         validate:"required,gt=0"`
}

type ProductoFilter struct {
	TipoProducto string `form:"tipo_producto"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// GrupoResponse is one display row: identical units collapsed with a count.
type GrupoResponse struct {
	TipoProducto    string          `json:"tipo_producto"`
	MarcaFabricante string          `json:"marca_fabricante"`
	Precio          decimal.Decimal `json:"precio"`
	FechaCaducidad  string          `json:"fecha_caducidad"`
	Cantidad        int             `json:"cantidad"`
}

// ResultadoUnidad reports one write of a batch operation.
type ResultadoUnidad struct {
	ID    string `json:"id,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ResultadoLote is the explicit batch result of a multi-unit operation.
// Writes are independent: some may fail while others land, and nothing is
// rolled back, so callers get the per-unit breakdown instead of a boolean.
type ResultadoLote struct {
	Solicitados int               `json:"solicitados"`
	Exitosos    int               `json:"exitosos"`
	Fallidos    int               `json:"fallidos"`
	Unidades    []ResultadoUnidad `json:"unidades"`
}
