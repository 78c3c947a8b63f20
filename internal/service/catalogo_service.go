package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/domerr"
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/model"
	"github.com/DrouetDanilo/Inventia/internal/repository"
)

// CatalogoService manages product templates: reusable (tipo, marca) pairs
// with price and slot capacity. Creation is gated by the account's plan.
type CatalogoService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearPlantillaRequest) (*dto.PlantillaResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.PlantillaResponse, error)
	Marcas(ctx context.Context, usuarioID uuid.UUID) ([]string, error)
}

type catalogoService struct {
	repo     repository.CatalogoRepository
	planRepo repository.PlanRepository
}

func NewCatalogoService(repo repository.CatalogoRepository, planRepo repository.PlanRepository) CatalogoService {
	return &catalogoService{repo: repo, planRepo: planRepo}
}

func (s *catalogoService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearPlantillaRequest) (*dto.PlantillaResponse, error) {
	limite := model.LimitePlanGratuito
	if p, err := s.planRepo.Find(ctx, usuarioID); err == nil {
		limite = p.LimiteProductos
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if limite != model.LimiteIlimitado {
		actual, err := s.repo.Count(ctx, usuarioID)
		if err != nil {
			return nil, err
		}
		if int(actual) >= limite {
			return nil, &domerr.LimitePlanExcedido{Actual: int(actual), Limite: limite}
		}
	}

	c := &model.CatalogoProducto{
		UsuarioID:       usuarioID,
		TipoProducto:    req.TipoProducto,
		MarcaFabricante: req.MarcaFabricante,
		Precio:          req.Precio,
		SlotsMaximos:    req.SlotsMaximos,
		FechaCreacion:   time.Now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return plantillaToResponse(c), nil
}

func (s *catalogoService) Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.PlantillaResponse, error) {
	plantillas, err := s.repo.Snapshot(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PlantillaResponse, len(plantillas))
	for i := range plantillas {
		resp[i] = *plantillaToResponse(&plantillas[i])
	}
	return resp, nil
}

// Marcas returns the distinct brands of the catalog, sorted, for the
// distributor form's brand selector.
func (s *catalogoService) Marcas(ctx context.Context, usuarioID uuid.UUID) ([]string, error) {
	plantillas, err := s.repo.Snapshot(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(plantillas))
	marcas := make([]string, 0, len(plantillas))
	for i := range plantillas {
		m := plantillas[i].MarcaFabricante
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		marcas = append(marcas, m)
	}
	sort.Strings(marcas)
	return marcas, nil
}

func plantillaToResponse(c *model.CatalogoProducto) *dto.PlantillaResponse {
	return &dto.PlantillaResponse{
		ID:              c.ID.String(),
		TipoProducto:    c.TipoProducto,
		MarcaFabricante: c.MarcaFabricante,
		Precio:          c.Precio,
		SlotsMaximos:    c.SlotsMaximos,
		FechaCreacion:   c.FechaCreacion.Format(time.RFC3339),
	}
}
