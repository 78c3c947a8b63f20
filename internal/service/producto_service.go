package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/domerr"
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/infra"
	"github.com/DrouetDanilo/Inventia/internal/model"
	"github.com/DrouetDanilo/Inventia/internal/repository"
	"github.com/DrouetDanilo/Inventia/internal/resumen"
)

// MarcaGenerica fills in when a quick admission names no brand.
const MarcaGenerica = "Genérico"

// ProductoService admits stock units and lists the ledger grouped for
// display. Admissions are capacity-guarded against the template's slots.
type ProductoService interface {
	Ingresar(ctx context.Context, usuarioID uuid.UUID, req dto.IngresarUnidadesRequest) (*dto.ResultadoLote, error)
	IngresoRapido(ctx context.Context, usuarioID uuid.UUID, req dto.IngresoRapidoRequest) (*dto.ResultadoLote, error)
	ListarAgrupados(ctx context.Context, usuarioID uuid.UUID, filtro dto.ProductoFilter) ([]dto.GrupoResponse, error)
}

type productoService struct {
	repo         repository.ProductoRepository
	catalogoRepo repository.CatalogoRepository
}

func NewProductoService(repo repository.ProductoRepository, catalogoRepo repository.CatalogoRepository) ProductoService {
	return &productoService{repo: repo, catalogoRepo: catalogoRepo}
}

// Ingresar admits N identical units copied from a catalog template.
// The capacity check is advisory: it reads the current count, rejects when
// current+N would overshoot, then writes without a lock. Admitting up to
// exactly the capacity succeeds.
func (s *productoService) Ingresar(ctx context.Context, usuarioID uuid.UUID, req dto.IngresarUnidadesRequest) (*dto.ResultadoLote, error) {
	plantillaID, err := uuid.Parse(req.PlantillaID)
	if err != nil {
		return nil, domerr.ErrNoEncontrado
	}
	plantilla, err := s.catalogoRepo.FindByID(ctx, usuarioID, plantillaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domerr.ErrNoEncontrado
		}
		return nil, err
	}
	if plantilla.SlotsMaximos <= 0 {
		return nil, &domerr.CapacidadInvalida{
			Producto: plantilla.TipoProducto,
			Marca:    plantilla.MarcaFabricante,
			Slots:    plantilla.SlotsMaximos,
		}
	}

	caducidad, err := time.Parse("2006-01-02", req.FechaCaducidad)
	if err != nil {
		return nil, err
	}

	if err := s.checkCapacidad(ctx, usuarioID, plantilla.TipoProducto, plantilla.MarcaFabricante, plantilla.SlotsMaximos, req.Cantidad); err != nil {
		return nil, err
	}

	return s.crearUnidades(ctx, usuarioID, plantilla.TipoProducto, plantilla.MarcaFabricante,
		plantilla, caducidad, req.Cantidad), nil
}

// IngresoRapido admits units described in-line by the barcode scanner flow.
// Capacity comes from a matching template when one exists, otherwise the
// default of 100 slots applies. Expiry defaults to one year out.
func (s *productoService) IngresoRapido(ctx context.Context, usuarioID uuid.UUID, req dto.IngresoRapidoRequest) (*dto.ResultadoLote, error) {
	marca := req.MarcaFabricante
	if marca == "" {
		marca = MarcaGenerica
	}

	slots := resumen.SlotsPorDefecto
	plantilla, err := s.catalogoRepo.FindByClave(ctx, usuarioID, req.TipoProducto, marca)
	if err == nil {
		if plantilla.SlotsMaximos <= 0 {
			return nil, &domerr.CapacidadInvalida{
				Producto: plantilla.TipoProducto,
				Marca:    plantilla.MarcaFabricante,
				Slots:    plantilla.SlotsMaximos,
			}
		}
		slots = plantilla.SlotsMaximos
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	caducidad := time.Now().AddDate(1, 0, 0)
	if req.FechaCaducidad != "" {
		caducidad, err = time.Parse("2006-01-02", req.FechaCaducidad)
		if err != nil {
			return nil, err
		}
	}

	if err := s.checkCapacidad(ctx, usuarioID, req.TipoProducto, marca, slots, req.Cantidad); err != nil {
		return nil, err
	}

	fuente := &model.CatalogoProducto{
		TipoProducto:    req.TipoProducto,
		MarcaFabricante: marca,
		Precio:          req.Precio,
	}
	return s.crearUnidades(ctx, usuarioID, req.TipoProducto, marca, fuente, caducidad, req.Cantidad), nil
}

func (s *productoService) checkCapacidad(ctx context.Context, usuarioID uuid.UUID, tipo, marca string, slots, cantidad int) error {
	actual, err := s.repo.CountByClave(ctx, usuarioID, tipo, marca)
	if err != nil {
		return err
	}
	if int(actual)+cantidad > slots {
		return &domerr.CapacidadExcedida{
			Actual:     int(actual),
			Solicitado: cantidad,
			Restantes:  slots - int(actual),
		}
	}
	return nil
}

// crearUnidades writes N rows concurrently. Each write is independent: a
// failed unit does not roll back the others, and the batch result reports
// every outcome.
func (s *productoService) crearUnidades(ctx context.Context, usuarioID uuid.UUID, tipo, marca string, fuente *model.CatalogoProducto, caducidad time.Time, cantidad int) *dto.ResultadoLote {
	ahora := time.Now()
	resultados := make([]dto.ResultadoUnidad, cantidad)

	var wg sync.WaitGroup
	for i := 0; i < cantidad; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			p := &model.Producto{
				UsuarioID:       usuarioID,
				TipoProducto:    tipo,
				MarcaFabricante: marca,
				Precio:          fuente.Precio,
				FechaCaducidad:  caducidad,
				FechaRegistro:   ahora,
				Estado:          model.EstadoDisponible,
			}
			if err := s.repo.Create(ctx, p); err != nil {
				resultados[idx] = dto.ResultadoUnidad{OK: false, Error: err.Error()}
				return
			}
			resultados[idx] = dto.ResultadoUnidad{ID: p.ID.String(), OK: true}
		}(i)
	}
	wg.Wait()

	lote := &dto.ResultadoLote{Solicitados: cantidad, Unidades: resultados}
	for _, r := range resultados {
		if r.OK {
			lote.Exitosos++
		} else {
			lote.Fallidos++
		}
	}
	infra.MetricUnidadesIngresadas.Add(float64(lote.Exitosos))
	return lote
}

// ListarAgrupados collapses identical units (tipo, marca, precio, caducidad)
// into display rows with a count, optionally filtered by product type.
func (s *productoService) ListarAgrupados(ctx context.Context, usuarioID uuid.UUID, filtro dto.ProductoFilter) ([]dto.GrupoResponse, error) {
	productos, err := s.repo.Snapshot(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	type claveGrupo struct {
		tipo, marca, precio, caducidad string
	}
	grupos := make(map[claveGrupo]*dto.GrupoResponse)
	for i := range productos {
		p := &productos[i]
		if filtro.TipoProducto != "" && p.TipoProducto != filtro.TipoProducto {
			continue
		}
		k := claveGrupo{
			tipo:      p.TipoProducto,
			marca:     p.MarcaFabricante,
			precio:    p.Precio.String(),
			caducidad: p.FechaCaducidad.Format("2006-01-02"),
		}
		if g, ok := grupos[k]; ok {
			g.Cantidad++
			continue
		}
		grupos[k] = &dto.GrupoResponse{
			TipoProducto:    p.TipoProducto,
			MarcaFabricante: p.MarcaFabricante,
			Precio:          p.Precio,
			FechaCaducidad:  k.caducidad,
			Cantidad:        1,
		}
	}

	out := make([]dto.GrupoResponse, 0, len(grupos))
	for _, g := range grupos {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TipoProducto != out[j].TipoProducto {
			return out[i].TipoProducto < out[j].TipoProducto
		}
		if out[i].MarcaFabricante != out[j].MarcaFabricante {
			return out[i].MarcaFabricante < out[j].MarcaFabricante
		}
		return out[i].FechaCaducidad < out[j].FechaCaducidad
	})
	return out, nil
}
