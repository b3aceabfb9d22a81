package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /api/dashboard.
// KPIs del condominio, datos para gráficos y actividad reciente.
type DashboardResponse struct {
	KPIs              DashboardKPIs     `json:"kpis"`
	Graficos          DashboardGraficos `json:"graficos"`
	ActividadReciente ActividadReciente `json:"actividad_reciente"`
	Periodo           string            `json:"periodo"` // ej: "Marzo 2025"
}

// DashboardKPIs indicadores principales.
type DashboardKPIs struct {
	TotalResidentes     int             `json:"total_residentes"`
	OcupacionPorcentaje decimal.Decimal `json:"ocupacion_porcentaje"` // unidades activas ocupadas / activas * 100
	AlertasActivas      int             `json:"alertas_activas"`
	TicketsPendientes   int             `json:"tickets_pendientes"` // abiertos + en proceso
	RecaudacionTotal    decimal.Decimal `json:"recaudacion_total"`  // suma de todos los pagos
	DeudaPendiente      decimal.Decimal `json:"deuda_pendiente"`    // saldo de cuotas pendientes y vencidas
}

// DashboardGraficos series para los gráficos del panel.
type DashboardGraficos struct {
	Finanzas ChartSerie `json:"finanzas"`
}

// ChartSerie etiquetas y valores de un gráfico.
type ChartSerie struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

// ActividadReciente últimas alertas de seguridad.
type ActividadReciente struct {
	Alertas []AlertaResponse `json:"alertas"`
}

// AlertaResponse alerta de seguridad en respuestas.
type AlertaResponse struct {
	ID                   string `json:"id"`
	TipoAlerta           string `json:"tipo_alerta"`
	Descripcion          string `json:"descripcion"`
	FechaHora            string `json:"fecha_hora"`
	URLEvidencia         string `json:"url_evidencia,omitempty"`
	ResidenteRelacionado string `json:"residente_relacionado,omitempty"`
	ResidenteNombre      string `json:"residente_nombre,omitempty"`
	Resuelto             bool   `json:"resuelto"`
}
