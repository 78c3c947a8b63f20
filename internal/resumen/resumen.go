// Package resumen derives the per-product dashboard rows from snapshots of
// the three account collections: catalog templates, stock units and the
// sales history. Everything here is a pure function over immutable slices —
// the caller re-runs it on every snapshot change, in any order, and always
// gets the same rows for the same data.
package resumen

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DrouetDanilo/Inventia/internal/domerr"
	"github.com/DrouetDanilo/Inventia/internal/model"
)

// SlotsPorDefecto is the capacity assumed for units whose (tipo, marca) pair
// has no catalog template. Inherited from the original data set.
const SlotsPorDefecto = 100

// Estado is the occupancy tier of a product group.
type Estado string

const (
	EstadoCritico Estado = "CRITICO" // ocupación ≤ 20%
	EstadoBajo    Estado = "BAJO"    // 20% < ocupación ≤ 50%
	EstadoNormal  Estado = "NORMAL"  // ocupación > 50%
)

// Fila is one derived summary row, keyed by (tipo, marca). Never persisted.
type Fila struct {
	Nombre       string
	Marca        string
	Precio       decimal.Decimal
	Stock        int
	Vendidos     int
	SlotsMaximos int
	DineroStock  decimal.Decimal // precio × stock, 2 decimals
	DineroGanado decimal.Decimal // precio × vendidos, 2 decimals
	Ocupacion    float64         // stock / slots × 100
	Estado       Estado
	Color        string
}

// Metricas are the account-wide dashboard cards.
type Metricas struct {
	TotalCategorias     int             // distinct catalog tipoProducto, case-insensitive
	TotalProductosStock int             // size of the stock ledger
	TotalVentas         int             // size of the sales history
	ValorStockTotal     decimal.Decimal // sum of every Fila.DineroStock
	ValorVentasTotal    decimal.Decimal // summed from raw sale prices, not from rows
}

// Clasificar maps an occupancy percentage onto its tier. Ties go to the more
// severe tier: exactly 20% is CRITICO, exactly 50% is BAJO.
func Clasificar(ocupacion float64) Estado {
	switch {
	case ocupacion <= 20:
		return EstadoCritico
	case ocupacion <= 50:
		return EstadoBajo
	default:
		return EstadoNormal
	}
}

// ColorSemaforo returns the display color of a tier.
func ColorSemaforo(e Estado) string {
	switch e {
	case EstadoCritico:
		return "#e74c3c"
	case EstadoBajo:
		return "#f39c12"
	default:
		return "#27ae60"
	}
}

type clave struct{ nombre, marca string }

// Generar builds one Fila per (tipo, marca) pair present in the stock ledger
// or the sales history. Pairs that exist only in the catalog are not
// emitted. A catalog template with slotsMaximos ≤ 0 is an input error.
func Generar(catalogo []model.CatalogoProducto, productos []model.Producto, ventas []model.Venta) ([]Fila, error) {
	slots := make(map[clave]int, len(catalogo))
	for _, c := range catalogo {
		if c.SlotsMaximos <= 0 {
			return nil, &domerr.CapacidadInvalida{
				Producto: c.TipoProducto, Marca: c.MarcaFabricante, Slots: c.SlotsMaximos,
			}
		}
		slots[clave{c.TipoProducto, c.MarcaFabricante}] = c.SlotsMaximos
	}

	filas := make(map[clave]*Fila)
	entrada := func(nombre, marca string, precio decimal.Decimal) *Fila {
		k := clave{nombre, marca}
		f, ok := filas[k]
		if !ok {
			max, tiene := slots[k]
			if !tiene {
				max = SlotsPorDefecto
			}
			f = &Fila{Nombre: nombre, Marca: marca, Precio: precio, SlotsMaximos: max}
			filas[k] = f
		}
		return f
	}

	for _, p := range productos {
		entrada(p.TipoProducto, p.MarcaFabricante, p.Precio).Stock++
	}
	for _, v := range ventas {
		entrada(v.TipoProducto, v.MarcaFabricante, v.Precio).Vendidos++
	}

	out := make([]Fila, 0, len(filas))
	for _, f := range filas {
		f.DineroStock = f.Precio.Mul(decimal.NewFromInt(int64(f.Stock))).Round(2)
		f.DineroGanado = f.Precio.Mul(decimal.NewFromInt(int64(f.Vendidos))).Round(2)
		f.Ocupacion = float64(f.Stock) / float64(f.SlotsMaximos) * 100
		f.Estado = Clasificar(f.Ocupacion)
		f.Color = ColorSemaforo(f.Estado)
		out = append(out, *f)
	}

	// Stable output order regardless of map iteration
	sort.Slice(out, func(i, j int) bool {
		if out[i].Nombre != out[j].Nombre {
			return out[i].Nombre < out[j].Nombre
		}
		return out[i].Marca < out[j].Marca
	})
	return out, nil
}

// Reabastecer returns the rows at or below 50% occupancy: CRITICO first,
// then BAJO, ascending occupancy within each tier.
func Reabastecer(filas []Fila) []Fila {
	var out []Fila
	for _, f := range filas {
		if f.Ocupacion <= 50 {
			out = append(out, f)
		}
	}
	rango := func(e Estado) int {
		if e == EstadoCritico {
			return 0
		}
		return 1
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Estado != out[j].Estado {
			return rango(out[i].Estado) < rango(out[j].Estado)
		}
		return out[i].Ocupacion < out[j].Ocupacion
	})
	return out
}

// MasVendidos returns the top n rows by units sold.
func MasVendidos(filas []Fila, n int) []Fila {
	out := make([]Fila, len(filas))
	copy(out, filas)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Vendidos > out[j].Vendidos })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// CalcularMetricas computes the account-wide cards. ValorVentasTotal is
// summed from the raw sale records rather than from the rows;
// both paths agree on well-formed data but are kept independent.
func CalcularMetricas(catalogo []model.CatalogoProducto, productos []model.Producto, ventas []model.Venta, filas []Fila) Metricas {
	categorias := make(map[string]struct{}, len(catalogo))
	for _, c := range catalogo {
		categorias[strings.ToLower(c.TipoProducto)] = struct{}{}
	}

	valorStock := decimal.Zero
	for _, f := range filas {
		valorStock = valorStock.Add(f.DineroStock)
	}

	valorVentas := decimal.Zero
	for _, v := range ventas {
		valorVentas = valorVentas.Add(v.Precio)
	}

	return Metricas{
		TotalCategorias:     len(categorias),
		TotalProductosStock: len(productos),
		TotalVentas:         len(ventas),
		ValorStockTotal:     valorStock.Round(2),
		ValorVentasTotal:    valorVentas.Round(2),
	}
}
