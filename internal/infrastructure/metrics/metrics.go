// Package metrics expone en Prometheus las decisiones de portería y los movimientos del libro
// de cobros.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/condominio-api/internal/application/access"
	"github.com/jhoicas/condominio-api/internal/application/billing"
)

var (
	_ access.Metrics  = (*Metrics)(nil)
	_ billing.Metrics = (*Metrics)(nil)
)

// Metrics colectores del servicio. Un *Metrics nil no registra nada.
type Metrics struct {
	// Decisiones por canal (qr, placa, facial), resultado y motivo interno
	AccessDecisions *prometheus.CounterVec

	// Latencia del canje de QR (incluye el lock de fila)
	RedeemLatency prometheus.Histogram

	// Pagos registrados por método
	Payments *prometheus.CounterVec

	ObligationsSettled prometheus.Counter
}

// New registra los colectores en reg. Con nil usa el registro global de Prometheus.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		AccessDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "condominio_access_decisions_total",
			Help: "Total access decisions by channel, decision and reason",
		}, []string{"canal", "decision", "motivo"}),

		RedeemLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "condominio_qr_redeem_duration_seconds",
			Help:    "Duration of QR redemption including the row lock",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		Payments: f.NewCounterVec(prometheus.CounterOpts{
			Name: "condominio_payments_total",
			Help: "Total payments applied by payment method",
		}, []string{"metodo"}),

		ObligationsSettled: f.NewCounter(prometheus.CounterOpts{
			Name: "condominio_obligations_settled_total",
			Help: "Total obligations that reached the paid state",
		}),
	}
}

// AccessDecision cuenta una decisión de acceso.
func (m *Metrics) AccessDecision(canal, decision, motivo string) {
	if m != nil {
		m.AccessDecisions.WithLabelValues(canal, decision, motivo).Inc()
	}
}

// ObserveRedeem registra la duración de un canje de QR.
func (m *Metrics) ObserveRedeem(d time.Duration) {
	if m != nil {
		m.RedeemLatency.Observe(d.Seconds())
	}
}

// PaymentApplied cuenta un pago registrado.
func (m *Metrics) PaymentApplied(metodo string) {
	if m != nil {
		m.Payments.WithLabelValues(metodo).Inc()
	}
}

// ObligationSettled cuenta una cuota que pasó a pagada.
func (m *Metrics) ObligationSettled() {
	if m != nil {
		m.ObligationsSettled.Inc()
	}
}
