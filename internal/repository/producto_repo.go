package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/model"
)

// ProductoRepository is the data access contract for the stock ledger.
// One row per physical unit; rows leave by Delete only.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	// Snapshot returns the whole ledger of the account. Row order is the
	// store's iteration order — callers must not rely on it.
	Snapshot(ctx context.Context, usuarioID uuid.UUID) ([]model.Producto, error)
	// CountByClave counts units sharing a (tipo, marca) pair — the current
	// occupancy the capacity guard checks against.
	CountByClave(ctx context.Context, usuarioID uuid.UUID, tipo, marca string) (int64, error)
	// FindGrupo returns the units of one display group: identical tipo,
	// marca, precio and expiry date.
	FindGrupo(ctx context.Context, usuarioID uuid.UUID, tipo, marca string, precio decimal.Decimal, caducidad time.Time) ([]model.Producto, error)
	Delete(ctx context.Context, usuarioID, id uuid.UUID) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) Snapshot(ctx context.Context, usuarioID uuid.UUID) ([]model.Producto, error) {
	var out []model.Producto
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Find(&out).Error
	return out, err
}

func (r *productoRepo) CountByClave(ctx context.Context, usuarioID uuid.UUID, tipo, marca string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("usuario_id = ? AND tipo_producto = ? AND marca_fabricante = ?", usuarioID, tipo, marca).
		Count(&n).Error
	return n, err
}

func (r *productoRepo) FindGrupo(ctx context.Context, usuarioID uuid.UUID, tipo, marca string, precio decimal.Decimal, caducidad time.Time) ([]model.Producto, error) {
	var out []model.Producto
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND tipo_producto = ? AND marca_fabricante = ? AND precio = ? AND fecha_caducidad = ?",
			usuarioID, tipo, marca, precio, caducidad.Format("2006-01-02")).
		Find(&out).Error
	return out, err
}

func (r *productoRepo) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("usuario_id = ? AND id = ?", usuarioID, id).
		Delete(&model.Producto{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
