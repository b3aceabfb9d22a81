package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/billing"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
)

var (
	hoy         = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	vencimiento = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestEstado_Tabla(t *testing.T) {
	cases := []struct {
		name        string
		monto       string
		pagado      string
		vencimiento time.Time
		want        entity.EstadoCuota
	}{
		{"sin pagos y no vencida", "300.00", "0", vencimiento, entity.EstadoPendiente},
		{"pago parcial no vencida", "300.00", "100.00", vencimiento, entity.EstadoPendiente},
		{"pago exacto", "300.00", "300.00", vencimiento, entity.EstadoPagada},
		{"sobrepago", "300.00", "350.00", vencimiento, entity.EstadoPagada},
		{"vencida sin pagos", "300.00", "0", hoy.AddDate(0, 0, -30), entity.EstadoVencida},
		{"vencida con pago parcial", "300.00", "299.99", hoy.AddDate(0, 0, -1), entity.EstadoVencida},
		{"pagada aunque vencida", "300.00", "300.00", hoy.AddDate(0, -2, 0), entity.EstadoPagada},
		{"vence hoy: aún pendiente", "300.00", "0", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), entity.EstadoPendiente},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := billing.Estado(d(tc.monto), d(tc.pagado), tc.vencimiento, hoy)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSaldo_NuncaNegativo(t *testing.T) {
	assert.True(t, billing.Saldo(d("300.00"), d("100.00")).Equal(d("200.00")))
	assert.True(t, billing.Saldo(d("300.00"), d("300.00")).IsZero())
	assert.True(t, billing.Saldo(d("300.00"), d("500.00")).IsZero())
}

func TestLiquidar_SaldoCeroSiYSoloSiPagada(t *testing.T) {
	pagos := []string{"0", "50.00", "100.00", "149.99", "150.00", "200.00"}
	for _, p := range pagos {
		l := billing.Liquidar(d("150.00"), d(p), vencimiento, hoy)
		assert.Equal(t, l.Saldo.IsZero(), l.Estado == entity.EstadoPagada, "pagado=%s", p)
	}
}

func TestVencida_FinDelDia(t *testing.T) {
	v := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.False(t, billing.Vencida(v, time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC)))
	assert.True(t, billing.Vencida(v, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestValidarMonto(t *testing.T) {
	for _, ok := range []string{"0.01", "100.5", "100.500", "9999999999.99"} {
		assert.NoError(t, billing.ValidarMonto("monto", d(ok)), ok)
	}
	for _, bad := range []string{"0", "-1", "0.001", "100.005", "10000000000"} {
		err := billing.ValidarMonto("monto_pagado", d(bad))
		var ve *domain.ValidationError
		if assert.ErrorAs(t, err, &ve, bad) {
			assert.Equal(t, "monto_pagado", ve.Field)
		}
	}
}
