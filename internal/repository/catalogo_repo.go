package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/model"
)

// CatalogoRepository is the data access contract for product templates.
// All queries are scoped to one account; services never see foreign rows.
type CatalogoRepository interface {
	Create(ctx context.Context, c *model.CatalogoProducto) error
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.CatalogoProducto, error)
	// Snapshot returns every template of the account in one read.
	Snapshot(ctx context.Context, usuarioID uuid.UUID) ([]model.CatalogoProducto, error)
	Count(ctx context.Context, usuarioID uuid.UUID) (int64, error)
	FindByClave(ctx context.Context, usuarioID uuid.UUID, tipo, marca string) (*model.CatalogoProducto, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) Create(ctx context.Context, c *model.CatalogoProducto) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *catalogoRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.CatalogoProducto, error) {
	var c model.CatalogoProducto
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND id = ?", usuarioID, id).
		First(&c).Error
	return &c, err
}

func (r *catalogoRepo) Snapshot(ctx context.Context, usuarioID uuid.UUID) ([]model.CatalogoProducto, error) {
	var out []model.CatalogoProducto
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("fecha_creacion ASC").
		Find(&out).Error
	return out, err
}

func (r *catalogoRepo) Count(ctx context.Context, usuarioID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.CatalogoProducto{}).
		Where("usuario_id = ?", usuarioID).
		Count(&n).Error
	return n, err
}

func (r *catalogoRepo) FindByClave(ctx context.Context, usuarioID uuid.UUID, tipo, marca string) (*model.CatalogoProducto, error) {
	var c model.CatalogoProducto
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND tipo_producto = ? AND marca_fabricante = ?", usuarioID, tipo, marca).
		First(&c).Error
	return &c, err
}
