package dto

import "github.com/shopspring/decimal"

// FilaResumen mirrors resumen.Fila for the dashboard table.
type FilaResumen struct {
	Nombre       string          `json:"nombre"`
	Marca        string          `json:"marca"`
	Precio       decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	Vendidos     int             `json:"vendidos"`
	SlotsMaximos int             `json:"slots_maximos"`
	DineroStock  decimal.Decimal `json:"dinero_stock"`
	DineroGanado decimal.Decimal `json:"dinero_ganado"`
	Ocupacion    float64         `json:"ocupacion"`
	Estado       string          `json:"estado"`
	Color        string          `json:"color"`
}

type MetricasResponse struct {
	TotalCategorias     int             `json:"total_categorias"`
	TotalProductosStock int             `json:"total_productos_stock"`
	TotalVentas         int             `json:"total_ventas"`
	ValorStockTotal     decimal.Decimal `json:"valor_stock_total"`
	ValorVentasTotal    decimal.Decimal `json:"valor_ventas_total"`
}

// DashboardResponse is everything the panel needs in one request.
type DashboardResponse struct {
	Metricas      MetricasResponse `json:"metricas"`
	Resumen       []FilaResumen    `json:"resumen"`
	MasVendidos   []FilaResumen    `json:"mas_vendidos"`
	UltimasVentas []VentaResponse  `json:"ultimas_ventas"`
}
