package billing

import (
	"time"

	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Liquidacion resultado de conciliar una cuota con la suma de sus pagos.
type Liquidacion struct {
	Monto  decimal.Decimal
	Pagado decimal.Decimal
	Saldo  decimal.Decimal // max(Monto - Pagado, 0)
	Estado entity.EstadoCuota
}

// Liquidar aplica la regla de liquidación (servicio de dominio):
//
//	pagada   si Pagado >= Monto
//	vencida  si no, y el día de vencimiento ya terminó
//	pendiente en otro caso
func Liquidar(monto, pagado decimal.Decimal, vencimiento, now time.Time) Liquidacion {
	return Liquidacion{
		Monto:  monto,
		Pagado: pagado,
		Saldo:  Saldo(monto, pagado),
		Estado: Estado(monto, pagado, vencimiento, now),
	}
}

// Estado deriva el estado de liquidación.
func Estado(monto, pagado decimal.Decimal, vencimiento, now time.Time) entity.EstadoCuota {
	if pagado.GreaterThanOrEqual(monto) {
		return entity.EstadoPagada
	}
	if Vencida(vencimiento, now) {
		return entity.EstadoVencida
	}
	return entity.EstadoPendiente
}

// Saldo devuelve lo que falta por pagar, nunca negativo.
func Saldo(monto, pagado decimal.Decimal) decimal.Decimal {
	saldo := monto.Sub(pagado)
	if saldo.IsNegative() {
		return decimal.Zero
	}
	return saldo
}

// Vencida indica si la fecha de vencimiento (día calendario) ya pasó: now está en o después
// del inicio del día siguiente, en la zona horaria de la fecha de vencimiento.
func Vencida(vencimiento, now time.Time) bool {
	y, m, d := vencimiento.Date()
	finDelDia := time.Date(y, m, d+1, 0, 0, 0, 0, vencimiento.Location())
	return !now.Before(finDelDia)
}

// montoMaximo primer valor que no cabe en NUMERIC(12,2).
var montoMaximo = decimal.New(1, 10)

// ValidarMonto exige un monto positivo, con a lo sumo 2 decimales y dentro de NUMERIC(12,2).
func ValidarMonto(field string, monto decimal.Decimal) error {
	switch {
	case !monto.IsPositive():
		return domain.NewValidationError(field, "debe ser mayor a 0")
	case !monto.Equal(monto.Truncate(2)):
		return domain.NewValidationError(field, "admite como máximo 2 decimales")
	case monto.GreaterThanOrEqual(montoMaximo):
		return domain.NewValidationError(field, "excede el máximo permitido (9999999999.99)")
	}
	return nil
}
