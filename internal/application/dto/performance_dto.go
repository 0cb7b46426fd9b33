package dto

import "github.com/shopspring/decimal"

// ChartDatasetDTO una serie del gráfico de rendimiento. El nombre de los
// campos replica el contrato que consumen los clientes Chart.js existentes.
type ChartDatasetDTO struct {
	Label       string            `json:"label"`
	Data        []decimal.Decimal `json:"data"`
	BorderColor string            `json:"borderColor"`
	Tension     float64           `json:"tension"`
}

// PerformanceChartDTO respuesta de GET /api/performance. Labels son los días
// con ventas (YYYY-MM-DD, ascendentes, sin duplicados); Datasets trae tres
// series alineadas por índice: ingresos, costos y ganancia.
type PerformanceChartDTO struct {
	Labels   []string          `json:"labels"`
	Datasets []ChartDatasetDTO `json:"datasets"`
}
