package dto

import "github.com/shopspring/decimal"

type CrearDistribuidorRequest struct {
	Nombre            string  `json:"nombre"             validate:"required,min=2,max=120"`
	Empresa           *string `json:"empresa"`
	Telefono          string  `json:"telefono"           validate:"required"`
	MarcaRepresentada string  `json:"marca_representada" validate:"required"`
	Email             *string `json:"email"              validate:"omitempty,email"`
}

type DistribuidorResponse struct {
	ID                string  `json:"id"`
	Nombre            string  `json:"nombre"`
	Empresa           *string `json:"empresa"`
	Telefono          string  `json:"telefono"`
	MarcaRepresentada string  `json:"marca_representada"`
	Email             *string `json:"email"`
	FechaCreacion     string  `json:"fecha_creacion"`
}

// ─── Order composer ──────────────────────────────────────────────────────────

type PedidoItemRequest struct {
	TipoProducto string `json:"tipo_producto" validate:"required"`
	Cantidad     int    `json:"cantidad"      validate:"min=0"`
}

type PedidoRequest struct {
	Items []PedidoItemRequest `json:"items" validate:"required,min=1,dive"`
}

type PedidoLinea struct {
	TipoProducto    string          `json:"tipo_producto"`
	MarcaFabricante string          `json:"marca_fabricante"`
	Cantidad        int             `json:"cantidad"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// PedidoResponse carries the composed message and the wa.me deep link; the
// client opens the URL, the server never talks to WhatsApp.
type PedidoResponse struct {
	URLWhatsApp   string          `json:"url_whatsapp"`
	Mensaje       string          `json:"mensaje"`
	Lineas        []PedidoLinea   `json:"lineas"`
	Total         decimal.Decimal `json:"total"`
	EmailEncolado bool            `json:"email_encolado"`
}
