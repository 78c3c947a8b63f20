package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de negocio expuestos en /metrics.
var (
	MetricVentasRegistradas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventia_ventas_registradas_total",
		Help: "Unidades vendidas registradas en el historial",
	})

	MetricUnidadesIngresadas = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventia_unidades_ingresadas_total",
		Help: "Unidades de producto admitidas al inventario",
	})

	MetricComandosVoz = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventia_comandos_voz_total",
		Help: "Comandos de voz procesados por intencion",
	}, []string{"intencion"})

	MetricEscaneos = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventia_escaneos_total",
		Help: "Consultas de codigo de barras recibidas",
	})
)
