package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/DrouetDanilo/Inventia/internal/domerr"
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/infra"
	"github.com/DrouetDanilo/Inventia/internal/model"
	"github.com/DrouetDanilo/Inventia/internal/repository"
)

// VentaService sells and removes stock units and serves the sales history.
// Selling copies each unit into the history before deleting it from stock;
// removal deletes without the copy. Both operate unit by unit with no
// rollback, reporting a per-unit batch result.
type VentaService interface {
	Vender(ctx context.Context, usuarioID uuid.UUID, req dto.GrupoRequest) (*dto.ResultadoLote, error)
	Eliminar(ctx context.Context, usuarioID uuid.UUID, req dto.GrupoRequest) (*dto.ResultadoLote, error)
	Historial(ctx context.Context, usuarioID uuid.UUID, filtro dto.VentaFilter) (*dto.HistorialResponse, error)
	Resumen(ctx context.Context, usuarioID uuid.UUID, filtro dto.VentaFilter) (*dto.VentaResumenResponse, error)
	Export(ctx context.Context, usuarioID uuid.UUID, filtro dto.VentaFilter) ([]byte, error)
}

type ventaService struct {
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
}

func NewVentaService(ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository) VentaService {
	return &ventaService{ventaRepo: ventaRepo, productoRepo: productoRepo}
}

func (s *ventaService) Vender(ctx context.Context, usuarioID uuid.UUID, req dto.GrupoRequest) (*dto.ResultadoLote, error) {
	grupo, err := s.buscarGrupo(ctx, usuarioID, req)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	lote := &dto.ResultadoLote{Solicitados: req.Cantidad}
	for _, p := range grupo[:req.Cantidad] {
		venta := &model.Venta{
			UsuarioID:       p.UsuarioID,
			TipoProducto:    p.TipoProducto,
			MarcaFabricante: p.MarcaFabricante,
			Precio:          p.Precio,
			FechaCaducidad:  p.FechaCaducidad,
			FechaRegistro:   p.FechaRegistro,
			FechaVenta:      ahora,
		}
		// Copy first, then delete. If the delete fails the unit stays in
		// stock alongside its history row; nothing is rolled back.
		if err := s.ventaRepo.Create(ctx, venta); err != nil {
			lote.Unidades = append(lote.Unidades, dto.ResultadoUnidad{ID: p.ID.String(), OK: false, Error: err.Error()})
			continue
		}
		if err := s.productoRepo.Delete(ctx, usuarioID, p.ID); err != nil {
			lote.Unidades = append(lote.Unidades, dto.ResultadoUnidad{ID: p.ID.String(), OK: false, Error: err.Error()})
			continue
		}
		lote.Unidades = append(lote.Unidades, dto.ResultadoUnidad{ID: p.ID.String(), OK: true})
	}
	for _, r := range lote.Unidades {
		if r.OK {
			lote.Exitosos++
		} else {
			lote.Fallidos++
		}
	}
	infra.MetricVentasRegistradas.Add(float64(lote.Exitosos))
	return lote, nil
}

// Eliminar discards units without recording sales. Same group semantics as
// Vender, minus the history copy.
func (s *ventaService) Eliminar(ctx context.Context, usuarioID uuid.UUID, req dto.GrupoRequest) (*dto.ResultadoLote, error) {
	grupo, err := s.buscarGrupo(ctx, usuarioID, req)
	if err != nil {
		return nil, err
	}

	lote := &dto.ResultadoLote{Solicitados: req.Cantidad}
	for _, p := range grupo[:req.Cantidad] {
		if err := s.productoRepo.Delete(ctx, usuarioID, p.ID); err != nil {
			lote.Unidades = append(lote.Unidades, dto.ResultadoUnidad{ID: p.ID.String(), OK: false, Error: err.Error()})
			lote.Fallidos++
			continue
		}
		lote.Unidades = append(lote.Unidades, dto.ResultadoUnidad{ID: p.ID.String(), OK: true})
		lote.Exitosos++
	}
	return lote, nil
}

func (s *ventaService) buscarGrupo(ctx context.Context, usuarioID uuid.UUID, req dto.GrupoRequest) ([]model.Producto, error) {
	caducidad, err := time.Parse("2006-01-02", req.FechaCaducidad)
	if err != nil {
		return nil, err
	}
	grupo, err := s.productoRepo.FindGrupo(ctx, usuarioID, req.TipoProducto, req.MarcaFabricante, req.Precio, caducidad)
	if err != nil {
		return nil, err
	}
	if len(grupo) == 0 {
		return nil, domerr.ErrNoEncontrado
	}
	if len(grupo) < req.Cantidad {
		return nil, &domerr.CantidadInsuficiente{Disponible: len(grupo), Solicitado: req.Cantidad}
	}
	return grupo, nil
}

func (s *ventaService) Historial(ctx context.Context, usuarioID uuid.UUID, filtro dto.VentaFilter) (*dto.HistorialResponse, error) {
	ventas, err := s.ventasFiltradas(ctx, usuarioID, filtro)
	if err != nil {
		return nil, err
	}

	resp := &dto.HistorialResponse{
		Ventas:       make([]dto.VentaResponse, len(ventas)),
		TotalPeriodo: decimal.Zero,
	}
	for i := range ventas {
		resp.Ventas[i] = ventaToResponse(&ventas[i])
		resp.TotalPeriodo = resp.TotalPeriodo.Add(ventas[i].Precio)
	}
	return resp, nil
}

// Resumen aggregates the filtered history per (tipo, marca), most sold first.
func (s *ventaService) Resumen(ctx context.Context, usuarioID uuid.UUID, filtro dto.VentaFilter) (*dto.VentaResumenResponse, error) {
	ventas, err := s.ventasFiltradas(ctx, usuarioID, filtro)
	if err != nil {
		return nil, err
	}

	type clave struct{ tipo, marca string }
	acc := make(map[clave]*dto.VentaResumenItem)
	total := decimal.Zero
	for i := range ventas {
		v := &ventas[i]
		total = total.Add(v.Precio)
		k := clave{v.TipoProducto, v.MarcaFabricante}
		item, ok := acc[k]
		if !ok {
			item = &dto.VentaResumenItem{
				TipoProducto:    v.TipoProducto,
				MarcaFabricante: v.MarcaFabricante,
				Precio:          v.Precio,
				Total:           decimal.Zero,
			}
			acc[k] = item
		}
		item.Cantidad++
		item.Total = item.Total.Add(v.Precio)
	}

	productos := make([]dto.VentaResumenItem, 0, len(acc))
	for _, item := range acc {
		productos = append(productos, *item)
	}
	sort.Slice(productos, func(i, j int) bool {
		if productos[i].Cantidad != productos[j].Cantidad {
			return productos[i].Cantidad > productos[j].Cantidad
		}
		return productos[i].TipoProducto < productos[j].TipoProducto
	})
	return &dto.VentaResumenResponse{Productos: productos, TotalPeriodo: total}, nil
}

// Export renders the filtered history as an XLSX workbook for download.
func (s *ventaService) Export(ctx context.Context, usuarioID uuid.UUID, filtro dto.VentaFilter) ([]byte, error) {
	ventas, err := s.ventasFiltradas(ctx, usuarioID, filtro)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Ventas"
	f.SetSheetName("Sheet1", hoja)

	encabezados := []string{"Producto", "Marca", "Precio", "Fecha caducidad", "Fecha venta"}
	for i, h := range encabezados {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(hoja, cell, h)
	}

	total := decimal.Zero
	for i := range ventas {
		v := &ventas[i]
		fila := i + 2
		f.SetCellValue(hoja, fmt.Sprintf("A%d", fila), v.TipoProducto)
		f.SetCellValue(hoja, fmt.Sprintf("B%d", fila), v.MarcaFabricante)
		f.SetCellValue(hoja, fmt.Sprintf("C%d", fila), v.Precio.InexactFloat64())
		f.SetCellValue(hoja, fmt.Sprintf("D%d", fila), v.FechaCaducidad.Format("2006-01-02"))
		f.SetCellValue(hoja, fmt.Sprintf("E%d", fila), v.FechaVenta.Format("2006-01-02 15:04"))
		total = total.Add(v.Precio)
	}

	filaTotal := len(ventas) + 3
	f.SetCellValue(hoja, fmt.Sprintf("B%d", filaTotal), "TOTAL")
	f.SetCellValue(hoja, fmt.Sprintf("C%d", filaTotal), total.InexactFloat64())

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ventasFiltradas applies the period filter over the full history snapshot.
// dia matches one calendar date (fecha param, today when absent), semana the
// last 7 days, mes the current calendar month.
func (s *ventaService) ventasFiltradas(ctx context.Context, usuarioID uuid.UUID, filtro dto.VentaFilter) ([]model.Venta, error) {
	ventas, err := s.ventaRepo.Snapshot(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if filtro.Periodo == "" || filtro.Periodo == "todo" {
		return ventas, nil
	}

	ahora := time.Now()
	var desde, hasta time.Time
	switch filtro.Periodo {
	case "dia":
		dia := ahora
		if filtro.Fecha != "" {
			dia, err = time.Parse("2006-01-02", filtro.Fecha)
			if err != nil {
				return nil, err
			}
		}
		desde = time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
		hasta = desde.AddDate(0, 0, 1)
	case "semana":
		desde = ahora.AddDate(0, 0, -7)
		hasta = ahora.Add(time.Minute)
	case "mes":
		desde = time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())
		hasta = desde.AddDate(0, 1, 0)
	}

	out := ventas[:0:0]
	for i := range ventas {
		fv := ventas[i].FechaVenta
		if !fv.Before(desde) && fv.Before(hasta) {
			out = append(out, ventas[i])
		}
	}
	return out, nil
}

func ventaToResponse(v *model.Venta) dto.VentaResponse {
	return dto.VentaResponse{
		ID:              v.ID.String(),
		TipoProducto:    v.TipoProducto,
		MarcaFabricante: v.MarcaFabricante,
		Precio:          v.Precio,
		FechaCaducidad:  v.FechaCaducidad.Format("2006-01-02"),
		FechaVenta:      v.FechaVenta.Format(time.RFC3339),
	}
}
