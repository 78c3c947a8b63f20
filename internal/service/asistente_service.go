package service

// asistente_service.go
// Intent matching over free text dictated by the client's speech recognizer.
// Keyword-based, not a grammar: agregar / vender / eliminar. The respuesta
// field is phrased for the client's TTS engine to speak back.

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/infra"
	"github.com/DrouetDanilo/Inventia/internal/model"
	"github.com/DrouetDanilo/Inventia/internal/repository"
)

const (
	IntencionAgregar  = "agregar"
	IntencionVender   = "vender"
	IntencionEliminar = "eliminar"
)

var (
	// Captura hasta el siguiente token reconocido para no arrastrar la
	// fecha o la cantidad dentro del nombre.
	reProducto = regexp.MustCompile(`producto ([\wáéíóúñ\s]+?)(?: fecha| cantidad| slot|$)`)
	reFecha    = regexp.MustCompile(`fecha ([\d/.\-]+)`)
	reCantidad = regexp.MustCompile(`(?:cantidad|slot) (\d+)`)
)

// AsistenteService executes spoken inventory commands.
type AsistenteService interface {
	Procesar(ctx context.Context, usuarioID uuid.UUID, req dto.ComandoRequest) *dto.ComandoResponse
}

type asistenteService struct {
	catalogoRepo repository.CatalogoRepository
	productoRepo repository.ProductoRepository
	productoSvc  ProductoService
	ventaSvc     VentaService
}

func NewAsistenteService(
	catalogoRepo repository.CatalogoRepository,
	productoRepo repository.ProductoRepository,
	productoSvc ProductoService,
	ventaSvc VentaService,
) AsistenteService {
	return &asistenteService{
		catalogoRepo: catalogoRepo,
		productoRepo: productoRepo,
		productoSvc:  productoSvc,
		ventaSvc:     ventaSvc,
	}
}

// Procesar never returns an error: a miss (product not found, write failed)
// is spoken feedback with exito=false, and text matching no intent comes
// back with entendido=false. Only those two axes reach the client.
func (s *asistenteService) Procesar(ctx context.Context, usuarioID uuid.UUID, req dto.ComandoRequest) *dto.ComandoResponse {
	texto := strings.ToLower(strings.TrimSpace(req.Texto))

	switch {
	case strings.Contains(texto, IntencionAgregar):
		infra.MetricComandosVoz.WithLabelValues(IntencionAgregar).Inc()
		return s.agregar(ctx, usuarioID, texto)
	case strings.Contains(texto, IntencionVender):
		infra.MetricComandosVoz.WithLabelValues(IntencionVender).Inc()
		return s.venderOEliminar(ctx, usuarioID, texto, IntencionVender)
	case strings.Contains(texto, IntencionEliminar):
		infra.MetricComandosVoz.WithLabelValues(IntencionEliminar).Inc()
		return s.venderOEliminar(ctx, usuarioID, texto, IntencionEliminar)
	}

	infra.MetricComandosVoz.WithLabelValues("desconocida").Inc()
	return &dto.ComandoResponse{
		Entendido: false,
		Respuesta: "No entendí el comando",
	}
}

func (s *asistenteService) agregar(ctx context.Context, usuarioID uuid.UUID, texto string) *dto.ComandoResponse {
	resp := &dto.ComandoResponse{Entendido: true, Intencion: IntencionAgregar}

	nombre := extraerProducto(texto)
	fechaStr := extraer(reFecha, texto)
	if nombre == "" || fechaStr == "" {
		resp.Respuesta = "Por favor di el nombre del producto y la fecha de caducidad"
		return resp
	}
	fecha, err := ParseFecha(fechaStr)
	if err != nil {
		resp.Respuesta = fmt.Sprintf("No entendí la fecha %s", fechaStr)
		return resp
	}
	cantidad := 1
	if c := extraer(reCantidad, texto); c != "" {
		cantidad, _ = strconv.Atoi(c)
	}

	plantillaID, err := s.buscarPlantilla(ctx, usuarioID, nombre)
	if err != nil {
		resp.Respuesta = fmt.Sprintf("No se encontró el producto %s en el catálogo", nombre)
		return resp
	}

	lote, err := s.productoSvc.Ingresar(ctx, usuarioID, dto.IngresarUnidadesRequest{
		PlantillaID:    plantillaID.String(),
		FechaCaducidad: fecha.Format("2006-01-02"),
		Cantidad:       cantidad,
	})
	if err != nil {
		resp.Respuesta = fmt.Sprintf("No se pudo agregar el producto %s: %s", nombre, err.Error())
		return resp
	}
	if lote.Fallidos > 0 {
		resp.Respuesta = fmt.Sprintf("Se agregaron %d de %d unidades de %s", lote.Exitosos, lote.Solicitados, nombre)
		resp.Exito = lote.Exitosos > 0
		return resp
	}
	resp.Exito = true
	resp.Respuesta = fmt.Sprintf("Producto %s agregado con éxito", nombre)
	return resp
}

func (s *asistenteService) venderOEliminar(ctx context.Context, usuarioID uuid.UUID, texto, intencion string) *dto.ComandoResponse {
	resp := &dto.ComandoResponse{Entendido: true, Intencion: intencion}

	nombre := extraerProducto(texto)
	if nombre == "" {
		resp.Respuesta = fmt.Sprintf("No entendí qué producto %s", intencion)
		return resp
	}

	unidad, err := s.buscarUnidad(ctx, usuarioID, nombre)
	if err != nil {
		resp.Respuesta = fmt.Sprintf("No se encontró el producto %s", nombre)
		return resp
	}

	grupo := dto.GrupoRequest{
		TipoProducto:    unidad.TipoProducto,
		MarcaFabricante: unidad.MarcaFabricante,
		Precio:          unidad.Precio,
		FechaCaducidad:  unidad.FechaCaducidad.Format("2006-01-02"),
		Cantidad:        1,
	}

	var lote *dto.ResultadoLote
	if intencion == IntencionVender {
		lote, err = s.ventaSvc.Vender(ctx, usuarioID, grupo)
	} else {
		lote, err = s.ventaSvc.Eliminar(ctx, usuarioID, grupo)
	}
	if err != nil || lote.Exitosos == 0 {
		verbo := "vender"
		if intencion == IntencionEliminar {
			verbo = "eliminar"
		}
		resp.Respuesta = fmt.Sprintf("No se pudo %s el producto %s", verbo, nombre)
		return resp
	}

	resp.Exito = true
	participio := "vendido"
	if intencion == IntencionEliminar {
		participio = "eliminado"
	}
	resp.Respuesta = fmt.Sprintf("Producto %s %s con éxito", nombre, participio)
	return resp
}

func (s *asistenteService) buscarPlantilla(ctx context.Context, usuarioID uuid.UUID, nombre string) (uuid.UUID, error) {
	catalogo, err := s.catalogoRepo.Snapshot(ctx, usuarioID)
	if err != nil {
		return uuid.Nil, err
	}
	objetivo := strings.ToLower(nombre)
	for i := range catalogo {
		if strings.ToLower(catalogo[i].TipoProducto) == objetivo {
			return catalogo[i].ID, nil
		}
	}
	return uuid.Nil, fmt.Errorf("plantilla %q no existe", nombre)
}

func (s *asistenteService) buscarUnidad(ctx context.Context, usuarioID uuid.UUID, nombre string) (*model.Producto, error) {
	productos, err := s.productoRepo.Snapshot(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	objetivo := strings.ToLower(nombre)
	for i := range productos {
		if strings.ToLower(productos[i].TipoProducto) == objetivo {
			return &productos[i], nil
		}
	}
	return nil, fmt.Errorf("producto %q no está en stock", nombre)
}

func extraerProducto(texto string) string {
	return strings.TrimSpace(extraer(reProducto, texto))
}

func extraer(re *regexp.Regexp, texto string) string {
	m := re.FindStringSubmatch(texto)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// ParseFecha accepts the spoken date grammar: ISO (2026-03-15), day/month/
// year with /, - or . separators (15/3/2026), and month/year where the day
// defaults to the 1st (3/2026).
func ParseFecha(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}

	partes := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	switch len(partes) {
	case 3:
		d, err1 := strconv.Atoi(partes[0])
		m, err2 := strconv.Atoi(partes[1])
		y, err3 := strconv.Atoi(partes[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, fmt.Errorf("fecha invalida: %q", s)
		}
		return fechaValida(y, m, d, s)
	case 2:
		m, err1 := strconv.Atoi(partes[0])
		y, err2 := strconv.Atoi(partes[1])
		if err1 != nil || err2 != nil {
			return time.Time{}, fmt.Errorf("fecha invalida: %q", s)
		}
		return fechaValida(y, m, 1, s)
	}
	return time.Time{}, fmt.Errorf("fecha invalida: %q", s)
}

func fechaValida(y, m, d int, original string) (time.Time, error) {
	if y < 1000 || m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("fecha invalida: %q", original)
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// Rechaza desbordes tipo 31/2 que time.Date normaliza en silencio
	if t.Day() != d || int(t.Month()) != m {
		return time.Time{}, fmt.Errorf("fecha invalida: %q", original)
	}
	return t, nil
}
