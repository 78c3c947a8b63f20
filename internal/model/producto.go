package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EstadoDisponible is the only status a stock unit ever holds: units leave
// the ledger by being sold or removed, never by changing state.
const EstadoDisponible = "disponible"

// Producto is one physical unit in stock. Descriptive fields are copied from
// the template at admission time, so orphaned units (template deleted or
// never created) remain valid rows.
type Producto struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TipoProducto    string          `gorm:"not null;index"`
	MarcaFabricante string          `gorm:"not null"`
	Precio          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FechaCaducidad  time.Time       `gorm:"type:date;not null"`
	FechaRegistro   time.Time       `gorm:"not null"`
	Estado          string          `gorm:"not null;default:'disponible'"`
}
