package dto

import "github.com/shopspring/decimal"

type CrearPlantillaRequest struct {
	TipoProducto    string          `json:"tipo_producto"    validate:"required,min=2,max=120"`
	MarcaFabricante string          `json:"marca_fabricante" validate:"required,min=1,max=120"`
	Precio          decimal.Decimal `json:"precio"           validate:"min=0"`
	SlotsMaximos    int             `json:"slots_maximos"    validate:"required,gt=0"`
}

type PlantillaResponse struct {
	ID              string          `json:"id"`
	TipoProducto    string          `json:"tipo_producto"`
	MarcaFabricante string          `json:"marca_fabricante"`
	Precio          decimal.Decimal `json:"precio"`
	SlotsMaximos    int             `json:"slots_maximos"`
	FechaCreacion   string          `json:"fecha_creacion"`
}
