package resumen

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrouetDanilo/Inventia/internal/domerr"
	"github.com/DrouetDanilo/Inventia/internal/model"
)

func plantilla(tipo, marca string, precio float64, slots int) model.CatalogoProducto {
	return model.CatalogoProducto{
		TipoProducto:    tipo,
		MarcaFabricante: marca,
		Precio:          decimal.NewFromFloat(precio),
		SlotsMaximos:    slots,
	}
}

func unidad(tipo, marca string, precio float64) model.Producto {
	return model.Producto{
		TipoProducto:    tipo,
		MarcaFabricante: marca,
		Precio:          decimal.NewFromFloat(precio),
	}
}

func venta(tipo, marca string, precio float64) model.Venta {
	return model.Venta{
		TipoProducto:    tipo,
		MarcaFabricante: marca,
		Precio:          decimal.NewFromFloat(precio),
	}
}

func unidades(tipo, marca string, precio float64, n int) []model.Producto {
	out := make([]model.Producto, n)
	for i := range out {
		out[i] = unidad(tipo, marca, precio)
	}
	return out
}

// ── Clasificar ────────────────────────────────────────────────────────────────

func TestClasificarLimites(t *testing.T) {
	// Los empates van al nivel mas severo
	assert.Equal(t, EstadoCritico, Clasificar(0))
	assert.Equal(t, EstadoCritico, Clasificar(19.99))
	assert.Equal(t, EstadoCritico, Clasificar(20))
	assert.Equal(t, EstadoBajo, Clasificar(20.01))
	assert.Equal(t, EstadoBajo, Clasificar(50))
	assert.Equal(t, EstadoNormal, Clasificar(50.01))
	assert.Equal(t, EstadoNormal, Clasificar(100))
}

func TestColorSemaforo(t *testing.T) {
	assert.Equal(t, "#e74c3c", ColorSemaforo(EstadoCritico))
	assert.Equal(t, "#f39c12", ColorSemaforo(EstadoBajo))
	assert.Equal(t, "#27ae60", ColorSemaforo(EstadoNormal))
}

// ── Generar ───────────────────────────────────────────────────────────────────

func TestGenerarEscenarioCompleto(t *testing.T) {
	catalogo := []model.CatalogoProducto{plantilla("Leche", "MarcaA", 2.00, 10)}

	// 4 unidades en stock, 1 vendida
	productos := unidades("Leche", "MarcaA", 2.00, 4)
	ventas := []model.Venta{venta("Leche", "MarcaA", 2.00)}

	filas, err := Generar(catalogo, productos, ventas)
	require.NoError(t, err)
	require.Len(t, filas, 1)

	f := filas[0]
	assert.Equal(t, "Leche", f.Nombre)
	assert.Equal(t, "MarcaA", f.Marca)
	assert.Equal(t, 4, f.Stock)
	assert.Equal(t, 1, f.Vendidos)
	assert.Equal(t, 10, f.SlotsMaximos)
	assert.InDelta(t, 40.0, f.Ocupacion, 1e-9)
	assert.Equal(t, EstadoBajo, f.Estado)
	assert.Equal(t, "8.00", f.DineroStock.StringFixed(2))
	assert.Equal(t, "2.00", f.DineroGanado.StringFixed(2))
}

func TestGenerarHuerfanoUsaCapacidadPorDefecto(t *testing.T) {
	// Sin plantilla en el catalogo: capacidad 100
	filas, err := Generar(nil, unidades("Yogur", "MarcaB", 1.50, 30), nil)
	require.NoError(t, err)
	require.Len(t, filas, 1)

	assert.Equal(t, SlotsPorDefecto, filas[0].SlotsMaximos)
	assert.InDelta(t, 30.0, filas[0].Ocupacion, 1e-9)
	assert.Equal(t, EstadoBajo, filas[0].Estado)
}

func TestGenerarSoloCatalogoNoEmiteFilas(t *testing.T) {
	catalogo := []model.CatalogoProducto{plantilla("Pan", "MarcaC", 0.80, 50)}
	filas, err := Generar(catalogo, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, filas)
}

func TestGenerarCapacidadInvalida(t *testing.T) {
	catalogo := []model.CatalogoProducto{plantilla("Pan", "MarcaC", 0.80, 0)}

	_, err := Generar(catalogo, unidades("Pan", "MarcaC", 0.80, 1), nil)
	require.Error(t, err)

	var capErr *domerr.CapacidadInvalida
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "Pan", capErr.Producto)
	assert.Equal(t, 0, capErr.Slots)
}

func TestGenerarIndependienteDelOrden(t *testing.T) {
	catalogo := []model.CatalogoProducto{
		plantilla("Leche", "MarcaA", 2.00, 10),
		plantilla("Yogur", "MarcaB", 1.50, 20),
	}
	productos := append(unidades("Leche", "MarcaA", 2.00, 3), unidades("Yogur", "MarcaB", 1.50, 7)...)
	ventas := []model.Venta{
		venta("Leche", "MarcaA", 2.00),
		venta("Yogur", "MarcaB", 1.50),
		venta("Yogur", "MarcaB", 1.50),
	}

	original, err := Generar(catalogo, productos, ventas)
	require.NoError(t, err)

	// Permutar ambas fuentes
	invP := make([]model.Producto, len(productos))
	for i, p := range productos {
		invP[len(productos)-1-i] = p
	}
	invV := make([]model.Venta, len(ventas))
	for i, v := range ventas {
		invV[len(ventas)-1-i] = v
	}

	permutado, err := Generar(catalogo, invP, invV)
	require.NoError(t, err)
	assert.Equal(t, original, permutado)
}

func TestGenerarOrdenDeSalida(t *testing.T) {
	productos := []model.Producto{
		unidad("Yogur", "MarcaB", 1.50),
		unidad("Leche", "MarcaB", 2.00),
		unidad("Leche", "MarcaA", 2.00),
	}
	filas, err := Generar(nil, productos, nil)
	require.NoError(t, err)
	require.Len(t, filas, 3)

	assert.Equal(t, []string{"Leche", "Leche", "Yogur"}, []string{filas[0].Nombre, filas[1].Nombre, filas[2].Nombre})
	assert.Equal(t, "MarcaA", filas[0].Marca)
	assert.Equal(t, "MarcaB", filas[1].Marca)
}

// ── Reabastecer / MasVendidos ─────────────────────────────────────────────────

func TestReabastecerOrdenaPorUrgencia(t *testing.T) {
	filas := []Fila{
		{Nombre: "A", Ocupacion: 45, Estado: EstadoBajo},
		{Nombre: "B", Ocupacion: 10, Estado: EstadoCritico},
		{Nombre: "C", Ocupacion: 80, Estado: EstadoNormal},
		{Nombre: "D", Ocupacion: 30, Estado: EstadoBajo},
		{Nombre: "E", Ocupacion: 5, Estado: EstadoCritico},
	}

	out := Reabastecer(filas)
	require.Len(t, out, 4)
	assert.Equal(t, []string{"E", "B", "D", "A"}, []string{out[0].Nombre, out[1].Nombre, out[2].Nombre, out[3].Nombre})
}

func TestMasVendidos(t *testing.T) {
	filas := []Fila{
		{Nombre: "A", Vendidos: 2},
		{Nombre: "B", Vendidos: 9},
		{Nombre: "C", Vendidos: 5},
	}

	top := MasVendidos(filas, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Nombre)
	assert.Equal(t, "C", top[1].Nombre)

	// n mayor que el total devuelve todo
	assert.Len(t, MasVendidos(filas, 10), 3)
}

// ── CalcularMetricas ──────────────────────────────────────────────────────────

func TestCalcularMetricas(t *testing.T) {
	catalogo := []model.CatalogoProducto{
		plantilla("Leche", "MarcaA", 2.00, 10),
		plantilla("leche", "MarcaB", 2.50, 10), // mismo tipo, distinta mayuscula
		plantilla("Pan", "MarcaC", 0.80, 50),
	}
	productos := unidades("Leche", "MarcaA", 2.00, 4)
	ventas := []model.Venta{
		venta("Leche", "MarcaA", 2.00),
		venta("Pan", "MarcaC", 0.80),
	}

	filas, err := Generar(catalogo, productos, ventas)
	require.NoError(t, err)

	m := CalcularMetricas(catalogo, productos, ventas, filas)
	assert.Equal(t, 2, m.TotalCategorias) // Leche/leche cuentan una vez
	assert.Equal(t, 4, m.TotalProductosStock)
	assert.Equal(t, 2, m.TotalVentas)
	assert.Equal(t, "8.00", m.ValorStockTotal.StringFixed(2))
	assert.Equal(t, "2.80", m.ValorVentasTotal.StringFixed(2))
}
