package infra

// pdf.go — Reporte de inventario en PDF usando go-pdf/fpdf (solo plan premium).
// Genera un documento A4 con:
//   - Encabezado con fecha de generacion
//   - Metricas globales (categorias, stock, ventas, valores)
//   - Tabla del resumen agregado con estado semaforo por fila

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/DrouetDanilo/Inventia/internal/resumen"
)

// GenerateResumenPDF renders the aggregated inventory summary as a PDF and
// returns the document bytes for streaming as a download.
func GenerateResumenPDF(filas []resumen.Fila, metricas resumen.Metricas) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Reporte de Inventario", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Generado el "+time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Metricas ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Resumen general", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Categorias: %d    Productos en stock: %d    Unidades vendidas: %d",
		metricas.TotalCategorias, metricas.TotalProductosStock, metricas.TotalVentas), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Valor en stock: $%s    Valor vendido: $%s",
		metricas.ValorStockTotal.StringFixed(2), metricas.ValorVentasTotal.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	col := []float64{
		contentW * 0.24, // producto
		contentW * 0.18, // marca
		contentW * 0.10, // stock
		contentW * 0.10, // vendidos
		contentW * 0.14, // ocupacion
		contentW * 0.12, // estado
		contentW * 0.12, // valor
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(col[0], 6, "Producto", "1", 0, "L", true, 0, "")
	pdf.CellFormat(col[1], 6, "Marca", "1", 0, "L", true, 0, "")
	pdf.CellFormat(col[2], 6, "Stock", "1", 0, "C", true, 0, "")
	pdf.CellFormat(col[3], 6, "Vendidos", "1", 0, "C", true, 0, "")
	pdf.CellFormat(col[4], 6, "Ocupacion", "1", 0, "C", true, 0, "")
	pdf.CellFormat(col[5], 6, "Estado", "1", 0, "C", true, 0, "")
	pdf.CellFormat(col[6], 6, "Valor", "1", 1, "R", true, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, f := range filas {
		nombre := f.Nombre
		if len(nombre) > 26 {
			nombre = nombre[:25] + "…"
		}
		marca := f.Marca
		if len(marca) > 18 {
			marca = marca[:17] + "…"
		}

		switch f.Estado {
		case resumen.EstadoCritico:
			pdf.SetTextColor(192, 40, 40)
		case resumen.EstadoBajo:
			pdf.SetTextColor(176, 120, 10)
		default:
			pdf.SetTextColor(0, 0, 0)
		}

		pdf.CellFormat(col[0], 5, nombre, "1", 0, "L", false, 0, "")
		pdf.CellFormat(col[1], 5, marca, "1", 0, "L", false, 0, "")
		pdf.CellFormat(col[2], 5, fmt.Sprintf("%d/%d", f.Stock, f.SlotsMaximos), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col[3], 5, fmt.Sprintf("%d", f.Vendidos), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col[4], 5, fmt.Sprintf("%.1f%%", f.Ocupacion), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col[5], 5, string(f.Estado), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col[6], 5, "$"+f.DineroStock.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	if len(filas) == 0 {
		pdf.CellFormat(contentW, 6, "Sin productos registrados", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render reporte: %w", err)
	}
	return buf.Bytes(), nil
}
