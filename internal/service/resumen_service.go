package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/domerr"
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/infra"
	"github.com/DrouetDanilo/Inventia/internal/model"
	"github.com/DrouetDanilo/Inventia/internal/repository"
	"github.com/DrouetDanilo/Inventia/internal/resumen"
)

const topMasVendidos = 5

// ResumenService feeds the dashboard: the aggregated inventory table, its
// derived views and the premium PDF report.
type ResumenService interface {
	Dashboard(ctx context.Context, usuarioID uuid.UUID) (*dto.DashboardResponse, error)
	Reabastecer(ctx context.Context, usuarioID uuid.UUID) ([]dto.FilaResumen, error)
	MasVendidos(ctx context.Context, usuarioID uuid.UUID, n int) ([]dto.FilaResumen, error)
	Reporte(ctx context.Context, usuarioID uuid.UUID) ([]byte, error)
}

type resumenService struct {
	catalogoRepo repository.CatalogoRepository
	productoRepo repository.ProductoRepository
	ventaRepo    repository.VentaRepository
	planRepo     repository.PlanRepository
}

func NewResumenService(
	catalogoRepo repository.CatalogoRepository,
	productoRepo repository.ProductoRepository,
	ventaRepo repository.VentaRepository,
	planRepo repository.PlanRepository,
) ResumenService {
	return &resumenService{
		catalogoRepo: catalogoRepo,
		productoRepo: productoRepo,
		ventaRepo:    ventaRepo,
		planRepo:     planRepo,
	}
}

// snapshots reads the three sources the aggregation consumes in one place.
func (s *resumenService) snapshots(ctx context.Context, usuarioID uuid.UUID) ([]model.CatalogoProducto, []model.Producto, []model.Venta, error) {
	catalogo, err := s.catalogoRepo.Snapshot(ctx, usuarioID)
	if err != nil {
		return nil, nil, nil, err
	}
	productos, err := s.productoRepo.Snapshot(ctx, usuarioID)
	if err != nil {
		return nil, nil, nil, err
	}
	ventas, err := s.ventaRepo.Snapshot(ctx, usuarioID)
	if err != nil {
		return nil, nil, nil, err
	}
	return catalogo, productos, ventas, nil
}

func (s *resumenService) Dashboard(ctx context.Context, usuarioID uuid.UUID) (*dto.DashboardResponse, error) {
	catalogo, productos, ventas, err := s.snapshots(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	filas, err := resumen.Generar(catalogo, productos, ventas)
	if err != nil {
		return nil, err
	}
	metricas := resumen.CalcularMetricas(catalogo, productos, ventas, filas)
	top := resumen.MasVendidos(filas, topMasVendidos)

	ultimas := make([]dto.VentaResponse, 0, 5)
	for i := range ventas {
		if i == 5 {
			break
		}
		ultimas = append(ultimas, ventaToResponse(&ventas[i]))
	}

	return &dto.DashboardResponse{
		Metricas: dto.MetricasResponse{
			TotalCategorias:     metricas.TotalCategorias,
			TotalProductosStock: metricas.TotalProductosStock,
			TotalVentas:         metricas.TotalVentas,
			ValorStockTotal:     metricas.ValorStockTotal,
			ValorVentasTotal:    metricas.ValorVentasTotal,
		},
		Resumen:       filasToResponse(filas),
		MasVendidos:   filasToResponse(top),
		UltimasVentas: ultimas,
	}, nil
}

// Reabastecer lists the rows at or below half occupancy, most urgent first.
func (s *resumenService) Reabastecer(ctx context.Context, usuarioID uuid.UUID) ([]dto.FilaResumen, error) {
	filas, err := s.generar(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return filasToResponse(resumen.Reabastecer(filas)), nil
}

func (s *resumenService) MasVendidos(ctx context.Context, usuarioID uuid.UUID, n int) ([]dto.FilaResumen, error) {
	if n <= 0 {
		n = topMasVendidos
	}
	filas, err := s.generar(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return filasToResponse(resumen.MasVendidos(filas, n)), nil
}

// Reporte renders the summary as PDF. Premium plans only.
func (s *resumenService) Reporte(ctx context.Context, usuarioID uuid.UUID) ([]byte, error) {
	plan, err := s.planRepo.Find(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domerr.ErrPremiumRequerido
		}
		return nil, err
	}
	if plan.Tipo != model.PlanPremium {
		return nil, domerr.ErrPremiumRequerido
	}

	catalogo, productos, ventas, err := s.snapshots(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	filas, err := resumen.Generar(catalogo, productos, ventas)
	if err != nil {
		return nil, err
	}
	metricas := resumen.CalcularMetricas(catalogo, productos, ventas, filas)
	return infra.GenerateResumenPDF(filas, metricas)
}

func (s *resumenService) generar(ctx context.Context, usuarioID uuid.UUID) ([]resumen.Fila, error) {
	catalogo, productos, ventas, err := s.snapshots(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return resumen.Generar(catalogo, productos, ventas)
}

func filasToResponse(filas []resumen.Fila) []dto.FilaResumen {
	out := make([]dto.FilaResumen, len(filas))
	for i, f := range filas {
		out[i] = dto.FilaResumen{
			Nombre:       f.Nombre,
			Marca:        f.Marca,
			Precio:       f.Precio,
			Stock:        f.Stock,
			Vendidos:     f.Vendidos,
			SlotsMaximos: f.SlotsMaximos,
			DineroStock:  f.DineroStock,
			DineroGanado: f.DineroGanado,
			Ocupacion:    f.Ocupacion,
			Estado:       string(f.Estado),
			Color:        f.Color,
		}
	}
	return out
}
