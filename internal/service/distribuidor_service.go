package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DrouetDanilo/Inventia/internal/apierror"
	"github.com/DrouetDanilo/Inventia/internal/config"
	"github.com/DrouetDanilo/Inventia/internal/domerr"
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/model"
	"github.com/DrouetDanilo/Inventia/internal/repository"
	"github.com/DrouetDanilo/Inventia/internal/worker"
)

var noDigitos = regexp.MustCompile(`\D`)

// DistribuidorService manages supplier contacts and composes WhatsApp
// restock orders from the catalog entries of the represented brand.
type DistribuidorService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearDistribuidorRequest) (*dto.DistribuidorResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.DistribuidorResponse, error)
	Eliminar(ctx context.Context, usuarioID, id uuid.UUID) error
	ComponerPedido(ctx context.Context, usuarioID, distribuidorID uuid.UUID, req dto.PedidoRequest) (*dto.PedidoResponse, error)
}

type distribuidorService struct {
	repo         repository.DistribuidorRepository
	catalogoRepo repository.CatalogoRepository
	dispatcher   *worker.Dispatcher
	prefijoPais  string
}

func NewDistribuidorService(
	repo repository.DistribuidorRepository,
	catalogoRepo repository.CatalogoRepository,
	dispatcher *worker.Dispatcher,
	cfg *config.Config,
) DistribuidorService {
	return &distribuidorService{
		repo:         repo,
		catalogoRepo: catalogoRepo,
		dispatcher:   dispatcher,
		prefijoPais:  cfg.WhatsAppPrefijoPais,
	}
}

func (s *distribuidorService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearDistribuidorRequest) (*dto.DistribuidorResponse, error) {
	telefono := noDigitos.ReplaceAllString(req.Telefono, "")
	if len(telefono) < 10 {
		return nil, apierror.New("el teléfono debe tener al menos 10 dígitos")
	}

	d := &model.Distribuidor{
		UsuarioID:         usuarioID,
		Nombre:            req.Nombre,
		Empresa:           req.Empresa,
		Telefono:          telefono,
		MarcaRepresentada: req.MarcaRepresentada,
		Email:             req.Email,
		FechaCreacion:     time.Now(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return distribuidorToResponse(d), nil
}

func (s *distribuidorService) Listar(ctx context.Context, usuarioID uuid.UUID) ([]dto.DistribuidorResponse, error) {
	distribuidores, err := s.repo.List(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DistribuidorResponse, len(distribuidores))
	for i := range distribuidores {
		resp[i] = *distribuidorToResponse(&distribuidores[i])
	}
	return resp, nil
}

func (s *distribuidorService) Eliminar(ctx context.Context, usuarioID, id uuid.UUID) error {
	err := s.repo.Delete(ctx, usuarioID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domerr.ErrNoEncontrado
	}
	return err
}

// ComponerPedido builds the line-itemized order text for the catalog entries
// of the distributor's brand and the wa.me link addressed to its phone. When
// the distributor has an email, a copy of the order is queued for sending.
func (s *distribuidorService) ComponerPedido(ctx context.Context, usuarioID, distribuidorID uuid.UUID, req dto.PedidoRequest) (*dto.PedidoResponse, error) {
	d, err := s.repo.FindByID(ctx, usuarioID, distribuidorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domerr.ErrNoEncontrado
		}
		return nil, err
	}

	catalogo, err := s.catalogoRepo.Snapshot(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	// Templates of the represented brand, case-insensitive
	marca := strings.ToLower(d.MarcaRepresentada)
	porTipo := make(map[string]*model.CatalogoProducto)
	for i := range catalogo {
		if strings.ToLower(catalogo[i].MarcaFabricante) == marca {
			porTipo[strings.ToLower(catalogo[i].TipoProducto)] = &catalogo[i]
		}
	}
	if len(porTipo) == 0 {
		return nil, apierror.New("no hay productos registrados para esta marca en el catálogo")
	}

	lineas := make([]dto.PedidoLinea, 0, len(req.Items))
	total := decimal.Zero
	for _, item := range req.Items {
		if item.Cantidad <= 0 {
			continue
		}
		plantilla, ok := porTipo[strings.ToLower(item.TipoProducto)]
		if !ok {
			return nil, apierror.New(fmt.Sprintf("el producto %q no pertenece a la marca %s", item.TipoProducto, d.MarcaRepresentada))
		}
		subtotal := plantilla.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))).Round(2)
		lineas = append(lineas, dto.PedidoLinea{
			TipoProducto:    plantilla.TipoProducto,
			MarcaFabricante: plantilla.MarcaFabricante,
			Cantidad:        item.Cantidad,
			PrecioUnitario:  plantilla.Precio,
			Subtotal:        subtotal,
		})
		total = total.Add(subtotal)
	}
	if len(lineas) == 0 {
		return nil, apierror.New("debes seleccionar al menos un producto con cantidad mayor a 0")
	}

	mensaje := componerMensaje(lineas, total)
	telefono := d.Telefono
	if !strings.HasPrefix(telefono, s.prefijoPais) {
		telefono = s.prefijoPais + telefono
	}
	urlWhatsApp := fmt.Sprintf("https://wa.me/%s?text=%s", telefono, url.QueryEscape(mensaje))

	encolado := false
	if d.Email != nil && *d.Email != "" {
		payload := worker.PedidoJobPayload{
			ToEmail: *d.Email,
			Subject: "Pedido de reabastecimiento: " + d.MarcaRepresentada,
			Body:    mensaje,
		}
		if err := s.dispatcher.EnqueuePedido(ctx, payload); err != nil {
			log.Warn().Err(err).Str("email", *d.Email).Msg("no se pudo encolar la copia del pedido")
		} else {
			encolado = true
		}
	}

	return &dto.PedidoResponse{
		URLWhatsApp:   urlWhatsApp,
		Mensaje:       mensaje,
		Lineas:        lineas,
		Total:         total,
		EmailEncolado: encolado,
	}, nil
}

func componerMensaje(lineas []dto.PedidoLinea, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("¡Hola! Quisiera realizar el siguiente pedido:\n\n")
	for i, l := range lineas {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, l.TipoProducto, l.MarcaFabricante)
		fmt.Fprintf(&b, "   Cantidad: %d unidades\n", l.Cantidad)
		fmt.Fprintf(&b, "   Precio unitario: $%s\n", l.PrecioUnitario.StringFixed(2))
		fmt.Fprintf(&b, "   Subtotal: $%s\n\n", l.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "*TOTAL: $%s*\n\n", total.StringFixed(2))
	b.WriteString("Gracias por tu atención.")
	return b.String()
}

func distribuidorToResponse(d *model.Distribuidor) *dto.DistribuidorResponse {
	return &dto.DistribuidorResponse{
		ID:                d.ID.String(),
		Nombre:            d.Nombre,
		Empresa:           d.Empresa,
		Telefono:          d.Telefono,
		MarcaRepresentada: d.MarcaRepresentada,
		Email:             d.Email,
		FechaCreacion:     d.FechaCreacion.Format(time.RFC3339),
	}
}
