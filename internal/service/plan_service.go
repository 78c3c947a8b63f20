package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/model"
	"github.com/DrouetDanilo/Inventia/internal/repository"
)

type PlanService interface {
	Obtener(ctx context.Context, usuarioID uuid.UUID) (*dto.PlanResponse, error)
	Cambiar(ctx context.Context, usuarioID uuid.UUID, req dto.CambiarPlanRequest) (*dto.PlanResponse, error)
}

type planService struct {
	repo repository.PlanRepository
}

func NewPlanService(repo repository.PlanRepository) PlanService {
	return &planService{repo: repo}
}

// Obtener returns the account's plan. Accounts without a stored row are on
// the free tier.
func (s *planService) Obtener(ctx context.Context, usuarioID uuid.UUID) (*dto.PlanResponse, error) {
	p, err := s.repo.Find(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.PlanResponse{
				Tipo:            model.PlanGratuito,
				LimiteProductos: model.LimitePlanGratuito,
			}, nil
		}
		return nil, err
	}
	return planToResponse(p), nil
}

func (s *planService) Cambiar(ctx context.Context, usuarioID uuid.UUID, req dto.CambiarPlanRequest) (*dto.PlanResponse, error) {
	p := &model.Plan{
		UsuarioID:       usuarioID,
		Tipo:            req.Tipo,
		LimiteProductos: model.LimiteDe(req.Tipo),
		FechaCambio:     time.Now(),
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return planToResponse(p), nil
}

func planToResponse(p *model.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		Tipo:            p.Tipo,
		LimiteProductos: p.LimiteProductos,
		FechaCambio:     p.FechaCambio.Format(time.RFC3339),
	}
}
