package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is an append-only copy of a stock unit at the moment it was sold.
// History is immutable: rows are never updated or deleted.
type Venta struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TipoProducto    string          `gorm:"not null"`
	MarcaFabricante string          `gorm:"not null"`
	Precio          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FechaCaducidad  time.Time       `gorm:"type:date;not null"`
	FechaRegistro   time.Time       `gorm:"not null"`
	FechaVenta      time.Time       `gorm:"not null;index"`
}

// TableName keeps the original collection name (historialVentas).
func (Venta) TableName() string { return "historial_ventas" }
