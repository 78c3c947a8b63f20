package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DrouetDanilo/Inventia/internal/model"
)

// PlanRepository reads and writes the per-account plan singleton.
type PlanRepository interface {
	// Find returns gorm.ErrRecordNotFound for accounts that never changed
	// plan; callers treat that as the free tier.
	Find(ctx context.Context, usuarioID uuid.UUID) (*model.Plan, error)
	Upsert(ctx context.Context, p *model.Plan) error
}

type planRepo struct{ db *gorm.DB }

func NewPlanRepository(db *gorm.DB) PlanRepository { return &planRepo{db: db} }

func (r *planRepo) Find(ctx context.Context, usuarioID uuid.UUID) (*model.Plan, error) {
	var p model.Plan
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		First(&p).Error
	return &p, err
}

func (r *planRepo) Upsert(ctx context.Context, p *model.Plan) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "usuario_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tipo", "limite_productos", "fecha_cambio"}),
	}).Create(p).Error
}
