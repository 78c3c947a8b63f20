package model

import (
	"time"

	"github.com/google/uuid"
)

// Distribuidor is a supplier contact reachable by WhatsApp, tied to one
// represented brand. Telefono is stored digits-only.
type Distribuidor struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre            string    `gorm:"not null"`
	Empresa           *string
	Telefono          string `gorm:"not null"`
	MarcaRepresentada string `gorm:"not null"`
	Email             *string
	FechaCreacion     time.Time `gorm:"not null"`
}

func (Distribuidor) TableName() string { return "distribuidores" }
