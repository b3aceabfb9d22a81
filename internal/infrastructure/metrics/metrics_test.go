package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Contadores(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AccessDecision("qr", "denegado", "qr_ya_utilizado")
	m.AccessDecision("qr", "denegado", "qr_ya_utilizado")
	m.AccessDecision("placa", "permitido", "vehiculo_autorizado")
	m.PaymentApplied("transferencia")
	m.ObligationSettled()
	m.ObserveRedeem(3 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AccessDecisions.WithLabelValues("qr", "denegado", "qr_ya_utilizado")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccessDecisions.WithLabelValues("placa", "permitido", "vehiculo_autorizado")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Payments.WithLabelValues("transferencia")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ObligationsSettled))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RedeemLatency))
}

func TestMetrics_NilNoPanic(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AccessDecision("qr", "permitido", "qr_valido")
		m.ObserveRedeem(time.Second)
		m.PaymentApplied("efectivo")
		m.ObligationSettled()
	})
}

func TestNew_RegistrosIndependientes(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
