package dto

import "github.com/shopspring/decimal"

// PrefillResponse pre-fills the create-product form from the public product
// database. Encontrado=false (empty fields) is the degraded path — lookups
// never fail the scan flow.
type PrefillResponse struct {
	Encontrado      bool   `json:"encontrado"`
	TipoProducto    string `json:"tipo_producto"`
	MarcaFabricante string `json:"marca_fabricante"`
	Categoria       string `json:"categoria"`
}

// IngresoRapidoRequest is the scanner's quick admission: units described
// in-line rather than via a template. Expiry defaults to one year out.
type IngresoRapidoRequest struct {
	TipoProducto    string          `json:"tipo_producto"    validate:"required,min=2,max=120"`
	MarcaFabricante string          `json:"marca_fabricante"`
	Precio          decimal.Decimal `json:"precio"           validate:"min=0"`
	FechaCaducidad  string          `json:"fecha_caducidad"  validate:"omitempty,datetime=2006-01-02"`
	Cantidad        int             `json:"cantidad"         validate:"required,gt=0"`
}
