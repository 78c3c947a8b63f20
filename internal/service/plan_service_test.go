package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrouetDanilo/Inventia/internal/dto"
	"github.com/DrouetDanilo/Inventia/internal/model"
)

func TestObtenerPlanSinRegistroEsGratuito(t *testing.T) {
	svc := NewPlanService(newStubPlanRepo())

	resp, err := svc.Obtener(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.PlanGratuito, resp.Tipo)
	assert.Equal(t, model.LimitePlanGratuito, resp.LimiteProductos)
}

func TestCambiarAPremium(t *testing.T) {
	svc := NewPlanService(newStubPlanRepo())
	uid := uuid.New()

	resp, err := svc.Cambiar(context.Background(), uid, dto.CambiarPlanRequest{Tipo: model.PlanPremium})
	require.NoError(t, err)
	assert.Equal(t, model.PlanPremium, resp.Tipo)
	assert.Equal(t, model.LimiteIlimitado, resp.LimiteProductos)
	assert.NotEmpty(t, resp.FechaCambio)

	leido, err := svc.Obtener(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, model.PlanPremium, leido.Tipo)
}

func TestCambiarDeVueltaAGratuito(t *testing.T) {
	svc := NewPlanService(newStubPlanRepo())
	uid := uuid.New()

	_, err := svc.Cambiar(context.Background(), uid, dto.CambiarPlanRequest{Tipo: model.PlanPremium})
	require.NoError(t, err)
	resp, err := svc.Cambiar(context.Background(), uid, dto.CambiarPlanRequest{Tipo: model.PlanGratuito})
	require.NoError(t, err)
	assert.Equal(t, model.LimitePlanGratuito, resp.LimiteProductos)
}
