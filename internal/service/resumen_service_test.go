package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrouetDanilo/Inventia/internal/domerr"
	"github.com/DrouetDanilo/Inventia/internal/model"
)

func newResumenFixture() (ResumenService, *stubCatalogoRepo, *stubProductoRepo, *stubVentaRepo, *stubPlanRepo) {
	catalogoRepo := &stubCatalogoRepo{}
	productoRepo := newStubProductoRepo()
	ventaRepo := &stubVentaRepo{}
	planRepo := newStubPlanRepo()
	svc := NewResumenService(catalogoRepo, productoRepo, ventaRepo, planRepo)
	return svc, catalogoRepo, productoRepo, ventaRepo, planRepo
}

func TestDashboardEscenario(t *testing.T) {
	svc, catalogoRepo, productoRepo, ventaRepo, _ := newResumenFixture()
	uid := uuid.New()
	seedPlantilla(catalogoRepo, uid, "Leche", "MarcaA", 2.00, 10)
	seedUnidades(productoRepo, uid, "Leche", "MarcaA", 2.00, "2027-01-15", 4)
	ventaRepo.items = append(ventaRepo.items, model.Venta{
		ID: uuid.New(), UsuarioID: uid, TipoProducto: "Leche", MarcaFabricante: "MarcaA",
		Precio: decimal.NewFromFloat(2.00), FechaVenta: time.Now(),
	})

	resp, err := svc.Dashboard(context.Background(), uid)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Metricas.TotalCategorias)
	assert.Equal(t, 4, resp.Metricas.TotalProductosStock)
	assert.Equal(t, 1, resp.Metricas.TotalVentas)
	assert.Equal(t, "8.00", resp.Metricas.ValorStockTotal.StringFixed(2))
	assert.Equal(t, "2.00", resp.Metricas.ValorVentasTotal.StringFixed(2))

	require.Len(t, resp.Resumen, 1)
	fila := resp.Resumen[0]
	assert.Equal(t, "Leche", fila.Nombre)
	assert.Equal(t, 4, fila.Stock)
	assert.Equal(t, 1, fila.Vendidos)
	assert.InDelta(t, 40.0, fila.Ocupacion, 0.001)

	require.Len(t, resp.UltimasVentas, 1)
	assert.Equal(t, "Leche", resp.UltimasVentas[0].TipoProducto)
}

func TestReabastecerSoloFilasUrgentes(t *testing.T) {
	svc, catalogoRepo, productoRepo, _, _ := newResumenFixture()
	uid := uuid.New()
	seedPlantilla(catalogoRepo, uid, "Leche", "MarcaA", 2.00, 10)
	seedPlantilla(catalogoRepo, uid, "Pan", "MarcaB", 0.50, 10)
	seedUnidades(productoRepo, uid, "Leche", "MarcaA", 2.00, "2027-01-15", 2)
	seedUnidades(productoRepo, uid, "Pan", "MarcaB", 0.50, "2027-01-15", 9)

	filas, err := svc.Reabastecer(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "Leche", filas[0].Nombre)
}

func TestReporteSinPlanRequierePremium(t *testing.T) {
	svc, _, _, _, _ := newResumenFixture()

	_, err := svc.Reporte(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domerr.ErrPremiumRequerido)
}

func TestReportePlanGratuitoRequierePremium(t *testing.T) {
	svc, _, _, _, planRepo := newResumenFixture()
	uid := uuid.New()
	require.NoError(t, planRepo.Upsert(context.Background(), &model.Plan{
		UsuarioID: uid, Tipo: model.PlanGratuito, LimiteProductos: model.LimitePlanGratuito,
	}))

	_, err := svc.Reporte(context.Background(), uid)
	assert.ErrorIs(t, err, domerr.ErrPremiumRequerido)
}

func TestReportePremiumGeneraPDF(t *testing.T) {
	svc, catalogoRepo, productoRepo, ventaRepo, planRepo := newResumenFixture()
	uid := uuid.New()
	require.NoError(t, planRepo.Upsert(context.Background(), &model.Plan{
		UsuarioID: uid, Tipo: model.PlanPremium, LimiteProductos: model.LimiteIlimitado,
	}))
	seedPlantilla(catalogoRepo, uid, "Leche", "MarcaA", 2.00, 10)
	seedUnidades(productoRepo, uid, "Leche", "MarcaA", 2.00, "2027-01-15", 4)
	ventaRepo.items = append(ventaRepo.items, model.Venta{
		ID: uuid.New(), UsuarioID: uid, TipoProducto: "Leche", MarcaFabricante: "MarcaA",
		Precio: decimal.NewFromFloat(2.00), FechaVenta: time.Now(),
	})

	doc, err := svc.Reporte(context.Background(), uid)
	require.NoError(t, err)
	assert.True(t, len(doc) > 500, "el PDF debe tener contenido")
	assert.Equal(t, "%PDF-", string(doc[:5]))
}

func TestMasVendidosUsaTopPorDefecto(t *testing.T) {
	svc, catalogoRepo, productoRepo, ventaRepo, _ := newResumenFixture()
	uid := uuid.New()
	seedPlantilla(catalogoRepo, uid, "Leche", "MarcaA", 2.00, 10)
	seedPlantilla(catalogoRepo, uid, "Pan", "MarcaB", 0.50, 10)
	seedUnidades(productoRepo, uid, "Leche", "MarcaA", 2.00, "2027-01-15", 1)
	seedUnidades(productoRepo, uid, "Pan", "MarcaB", 0.50, "2027-01-15", 1)
	for i := 0; i < 3; i++ {
		ventaRepo.items = append(ventaRepo.items, model.Venta{
			ID: uuid.New(), UsuarioID: uid, TipoProducto: "Pan", MarcaFabricante: "MarcaB",
			Precio: decimal.NewFromFloat(0.50), FechaVenta: time.Now(),
		})
	}

	filas, err := svc.MasVendidos(context.Background(), uid, 0)
	require.NoError(t, err)
	require.NotEmpty(t, filas)
	assert.Equal(t, "Pan", filas[0].Nombre)
	assert.Equal(t, 3, filas[0].Vendidos)
}
