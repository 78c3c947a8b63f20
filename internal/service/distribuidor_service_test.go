package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrouetDanilo/Inventia/internal/config"
	"github.com/DrouetDanilo/Inventia/internal/domerr"
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/worker"
)

func newDistribuidorFixture() (DistribuidorService, *stubDistribuidorRepo, *stubCatalogoRepo) {
	repo := newStubDistribuidorRepo()
	catalogoRepo := &stubCatalogoRepo{}
	cfg := &config.Config{WhatsAppPrefijoPais: "593"}
	svc := NewDistribuidorService(repo, catalogoRepo, worker.NewDispatcher(nil), cfg)
	return svc, repo, catalogoRepo
}

func TestCrearDistribuidorNormalizaTelefono(t *testing.T) {
	svc, _, _ := newDistribuidorFixture()

	resp, err := svc.Crear(context.Background(), uuid.New(), dto.CrearDistribuidorRequest{
		Nombre:            "Carlos",
		Telefono:          "(099) 123-4567",
		MarcaRepresentada: "MarcaA",
	})
	require.NoError(t, err)
	assert.Equal(t, "0991234567", resp.Telefono)
}

func TestCrearDistribuidorTelefonoCorto(t *testing.T) {
	svc, _, _ := newDistribuidorFixture()

	_, err := svc.Crear(context.Background(), uuid.New(), dto.CrearDistribuidorRequest{
		Nombre:            "Carlos",
		Telefono:          "099-123",
		MarcaRepresentada: "MarcaA",
	})
	require.Error(t, err)
	assert.Equal(t, "el teléfono debe tener al menos 10 dígitos", err.Error())
}

func TestEliminarDistribuidorInexistente(t *testing.T) {
	svc, _, _ := newDistribuidorFixture()

	err := svc.Eliminar(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domerr.ErrNoEncontrado)
}

func seedDistribuidor(t *testing.T, svc DistribuidorService, uid uuid.UUID, marca string) uuid.UUID {
	t.Helper()
	resp, err := svc.Crear(context.Background(), uid, dto.CrearDistribuidorRequest{
		Nombre:            "Carlos",
		Telefono:          "0991234567",
		MarcaRepresentada: marca,
	})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	return id
}

func TestComponerPedidoMensaje(t *testing.T) {
	uid := uuid.New()
	svc, _, catalogoRepo := newDistribuidorFixture()
	seedPlantilla(catalogoRepo, uid, "Leche", "MarcaA", 1.50, 10)
	seedPlantilla(catalogoRepo, uid, "Yogur", "MarcaA", 0.80, 10)
	seedPlantilla(catalogoRepo, uid, "Pan", "MarcaB", 0.50, 10)
	id := seedDistribuidor(t, svc, uid, "marcaa") // marca en otro caso

	resp, err := svc.ComponerPedido(context.Background(), uid, id, dto.PedidoRequest{
		Items: []dto.PedidoItemRequest{
			{TipoProducto: "leche", Cantidad: 3},
			{TipoProducto: "Yogur", Cantidad: 0}, // cantidad 0 se omite
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Lineas, 1)
	assert.Equal(t, "Leche", resp.Lineas[0].TipoProducto)
	assert.Equal(t, "4.50", resp.Lineas[0].Subtotal.StringFixed(2))
	assert.Equal(t, "4.50", resp.Total.StringFixed(2))
	assert.False(t, resp.EmailEncolado)

	assert.True(t, strings.HasPrefix(resp.Mensaje, "¡Hola! Quisiera realizar el siguiente pedido:\n\n"))
	assert.Contains(t, resp.Mensaje, "1. Leche - MarcaA\n")
	assert.Contains(t, resp.Mensaje, "   Cantidad: 3 unidades\n")
	assert.Contains(t, resp.Mensaje, "   Precio unitario: $1.50\n")
	assert.Contains(t, resp.Mensaje, "   Subtotal: $4.50\n")
	assert.Contains(t, resp.Mensaje, "*TOTAL: $4.50*")
	assert.True(t, strings.HasSuffix(resp.Mensaje, "Gracias por tu atención."))
}

func TestComponerPedidoURLConPrefijoPais(t *testing.T) {
	uid := uuid.New()
	svc, _, catalogoRepo := newDistribuidorFixture()
	seedPlantilla(catalogoRepo, uid, "Leche", "MarcaA", 1.50, 10)
	id := seedDistribuidor(t, svc, uid, "MarcaA")

	resp, err := svc.ComponerPedido(context.Background(), uid, id, dto.PedidoRequest{
		Items: []dto.PedidoItemRequest{{TipoProducto: "Leche", Cantidad: 1}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.URLWhatsApp, "https://wa.me/5930991234567?text="))
	assert.NotContains(t, resp.URLWhatsApp, " ")
}

func TestComponerPedidoPrefijoYaPresente(t *testing.T) {
	uid := uuid.New()
	svc, _, catalogoRepo := newDistribuidorFixture()
	seedPlantilla(catalogoRepo, uid, "Leche", "MarcaA", 1.50, 10)

	resp, err := svc.Crear(context.Background(), uid, dto.CrearDistribuidorRequest{
		Nombre:            "Carlos",
		Telefono:          "5930991234567",
		MarcaRepresentada: "MarcaA",
	})
	require.NoError(t, err)
	id, _ := uuid.Parse(resp.ID)

	pedido, err := svc.ComponerPedido(context.Background(), uid, id, dto.PedidoRequest{
		Items: []dto.PedidoItemRequest{{TipoProducto: "Leche", Cantidad: 1}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pedido.URLWhatsApp, "https://wa.me/5930991234567?text="))
}

func TestComponerPedidoMarcaSinProductos(t *testing.T) {
	uid := uuid.New()
	svc, _, _ := newDistribuidorFixture()
	id := seedDistribuidor(t, svc, uid, "MarcaA")

	_, err := svc.ComponerPedido(context.Background(), uid, id, dto.PedidoRequest{
		Items: []dto.PedidoItemRequest{{TipoProducto: "Leche", Cantidad: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, "no hay productos registrados para esta marca en el catálogo", err.Error())
}

func TestComponerPedidoProductoDeOtraMarca(t *testing.T) {
	uid := uuid.New()
	svc, _, catalogoRepo := newDistribuidorFixture()
	seedPlantilla(catalogoRepo, uid, "Leche", "MarcaA", 1.50, 10)
	seedPlantilla(catalogoRepo, uid, "Pan", "MarcaB", 0.50, 10)
	id := seedDistribuidor(t, svc, uid, "MarcaA")

	_, err := svc.ComponerPedido(context.Background(), uid, id, dto.PedidoRequest{
		Items: []dto.PedidoItemRequest{{TipoProducto: "Pan", Cantidad: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pertenece a la marca")
}

func TestComponerPedidoSinCantidades(t *testing.T) {
	uid := uuid.New()
	svc, _, catalogoRepo := newDistribuidorFixture()
	seedPlantilla(catalogoRepo, uid, "Leche", "MarcaA", 1.50, 10)
	id := seedDistribuidor(t, svc, uid, "MarcaA")

	_, err := svc.ComponerPedido(context.Background(), uid, id, dto.PedidoRequest{
		Items: []dto.PedidoItemRequest{{TipoProducto: "Leche", Cantidad: 0}},
	})
	require.Error(t, err)
	assert.Equal(t, "debes seleccionar al menos un producto con cantidad mayor a 0", err.Error())
}
