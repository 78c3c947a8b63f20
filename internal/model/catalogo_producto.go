package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogoProducto is a reusable product template: a (tipo, marca) pair with
// its unit price and slot capacity. Immutable once created; stock units copy
// its fields instead of referencing it.
type CatalogoProducto struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TipoProducto    string          `gorm:"not null"`
	MarcaFabricante string          `gorm:"not null"`
	Precio          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SlotsMaximos    int             `gorm:"not null"`
	FechaCreacion   time.Time       `gorm:"not null"`
}

// TableName keeps the original collection name (catalogoProductos).
func (CatalogoProducto) TableName() string { return "catalogo_productos" }
