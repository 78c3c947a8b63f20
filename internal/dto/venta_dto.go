package dto

import "github.com/shopspring/decimal"

// VentaFilter selects a slice of the sales history.
// Periodo: todo | dia | semana | mes. Fecha applies to periodo=dia only.
type VentaFilter struct {
	Periodo string `form:"periodo,default=todo" validate:"omitempty,oneof=todo dia semana mes"`
	Fecha   string `form:"fecha"                validate:"omitempty,datetime=2006-01-02"`
}

type VentaResponse struct {
	ID              string          `json:"id"`
	TipoProducto    string          `json:"tipo_producto"`
	MarcaFabricante string          `json:"marca_fabricante"`
	Precio          decimal.Decimal `json:"precio"`
	FechaCaducidad  string          `json:"fecha_caducidad"`
	FechaVenta      string          `json:"fecha_venta"`
}

// VentaResumenItem aggregates the filtered history per (tipo, marca).
type VentaResumenItem struct {
	TipoProducto    string          `json:"tipo_producto"`
	MarcaFabricante string          `json:"marca_fabricante"`
	Precio          decimal.Decimal `json:"precio"`
	Cantidad        int             `json:"cantidad"`
	Total           decimal.Decimal `json:"total"`
}

type HistorialResponse struct {
	Ventas       []VentaResponse `json:"ventas"`
	TotalPeriodo decimal.Decimal `json:"total_periodo"`
}

type VentaResumenResponse struct {
	Productos    []VentaResumenItem `json:"productos"`
	TotalPeriodo decimal.Decimal    `json:"total_periodo"`
}
