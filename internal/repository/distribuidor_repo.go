package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/model"
)

type DistribuidorRepository interface {
	Create(ctx context.Context, d *model.Distribuidor) error
	FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Distribuidor, error)
	List(ctx context.Context, usuarioID uuid.UUID) ([]model.Distribuidor, error)
	Delete(ctx context.Context, usuarioID, id uuid.UUID) error
}

type distribuidorRepo struct{ db *gorm.DB }

func NewDistribuidorRepository(db *gorm.DB) DistribuidorRepository {
	return &distribuidorRepo{db: db}
}

func (r *distribuidorRepo) Create(ctx context.Context, d *model.Distribuidor) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *distribuidorRepo) FindByID(ctx context.Context, usuarioID, id uuid.UUID) (*model.Distribuidor, error) {
	var d model.Distribuidor
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND id = ?", usuarioID, id).
		First(&d).Error
	return &d, err
}

func (r *distribuidorRepo) List(ctx context.Context, usuarioID uuid.UUID) ([]model.Distribuidor, error) {
	var out []model.Distribuidor
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("fecha_creacion ASC").
		Find(&out).Error
	return out, err
}

func (r *distribuidorRepo) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("usuario_id = ? AND id = ?", usuarioID, id).
		Delete(&model.Distribuidor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
