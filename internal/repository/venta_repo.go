package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/model"
)

// VentaRepository is the data access contract for the sales history.
// Append-only: there is no update or delete.
type VentaRepository interface {
	Create(ctx context.Context, v *model.Venta) error
	// Snapshot returns the account's full history, newest sale first.
	Snapshot(ctx context.Context, usuarioID uuid.UUID) ([]model.Venta, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) Create(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) Snapshot(ctx context.Context, usuarioID uuid.UUID) ([]model.Venta, error) {
	var out []model.Venta
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("fecha_venta DESC").
		Find(&out).Error
	return out, err
}
