package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is an account. Every inventory row carries its UsuarioID — data is
// namespaced per account exactly like the storage paths it replaces.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
