package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PlanGratuito = "gratuito"
	PlanPremium  = "premium"

	// LimitePlanGratuito is the template cap on the free tier.
	LimitePlanGratuito = 100
	// LimiteIlimitado marks the premium tier (no cap).
	LimiteIlimitado = -1
)

// Plan is the per-account singleton gating how many catalog templates the
// account may create. Accounts without a row are treated as gratuito.
type Plan struct {
	UsuarioID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tipo            string    `gorm:"not null;default:'gratuito'"`
	LimiteProductos int       `gorm:"not null;default:100"`
	FechaCambio     time.Time `gorm:"not null"`
}

func (Plan) TableName() string { return "planes" }

// LimiteDe returns the template cap for a plan tier.
func LimiteDe(tipo string) int {
	if tipo == PlanPremium {
		return LimiteIlimitado
	}
	return LimitePlanGratuito
}
