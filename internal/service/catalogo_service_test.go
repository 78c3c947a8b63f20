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
	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/model"
)

func TestCatalogoCrearYListar(t *testing.T) {
	repo := &stubCatalogoRepo{}
	planRepo := newStubPlanRepo()
	svc := NewCatalogoService(repo, planRepo)
	uid := uuid.New()

	resp, err := svc.Crear(context.Background(), uid, dto.CrearPlantillaRequest{
		TipoProducto:    "Leche",
		MarcaFabricante: "MarcaA",
		Precio:          decimal.NewFromFloat(2.50),
		SlotsMaximos:    10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 10, resp.SlotsMaximos)

	lista, err := svc.Listar(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Leche", lista[0].TipoProducto)
}

func TestCatalogoLimitePlanGratuito(t *testing.T) {
	repo := &stubCatalogoRepo{}
	planRepo := newStubPlanRepo()
	svc := NewCatalogoService(repo, planRepo)
	uid := uuid.New()

	// Cuenta sin fila de plan: tope del plan gratuito
	for i := 0; i < model.LimitePlanGratuito; i++ {
		repo.items = append(repo.items, model.CatalogoProducto{
			ID: uuid.New(), UsuarioID: uid, TipoProducto: "X", MarcaFabricante: "Y",
		})
	}

	_, err := svc.Crear(context.Background(), uid, dto.CrearPlantillaRequest{
		TipoProducto: "Leche", MarcaFabricante: "MarcaA", SlotsMaximos: 10,
	})
	require.Error(t, err)

	var limErr *domerr.LimitePlanExcedido
	require.ErrorAs(t, err, &limErr)
	assert.Equal(t, model.LimitePlanGratuito, limErr.Actual)
	assert.Equal(t, model.LimitePlanGratuito, limErr.Limite)
}

func TestCatalogoPremiumSinLimite(t *testing.T) {
	repo := &stubCatalogoRepo{}
	planRepo := newStubPlanRepo()
	svc := NewCatalogoService(repo, planRepo)
	uid := uuid.New()

	planRepo.plans[uid] = model.Plan{
		UsuarioID: uid, Tipo: model.PlanPremium,
		LimiteProductos: model.LimiteIlimitado, FechaCambio: time.Now(),
	}
	for i := 0; i < model.LimitePlanGratuito+5; i++ {
		repo.items = append(repo.items, model.CatalogoProducto{
			ID: uuid.New(), UsuarioID: uid, TipoProducto: "X", MarcaFabricante: "Y",
		})
	}

	_, err := svc.Crear(context.Background(), uid, dto.CrearPlantillaRequest{
		TipoProducto: "Leche", MarcaFabricante: "MarcaA", SlotsMaximos: 10,
	})
	assert.NoError(t, err)
}

func TestCatalogoMarcasUnicasOrdenadas(t *testing.T) {
	repo := &stubCatalogoRepo{}
	svc := NewCatalogoService(repo, newStubPlanRepo())
	uid := uuid.New()

	for _, m := range []string{"Nestle", "Alpina", "Nestle", "Colanta"} {
		repo.items = append(repo.items, model.CatalogoProducto{
			ID: uuid.New(), UsuarioID: uid, TipoProducto: "X", MarcaFabricante: m,
		})
	}

	marcas, err := svc.Marcas(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpina", "Colanta", "Nestle"}, marcas)
}
