package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoCuota estado de liquidación de una cuota.
type EstadoCuota string

// Estados de liquidación. Se derivan del monto, los pagos y el vencimiento; nunca se asignan a mano.
const (
	EstadoPendiente EstadoCuota = "pendiente"
	EstadoVencida   EstadoCuota = "vencida"
	EstadoPagada    EstadoCuota = "pagada"
)

// Valid indica si el estado es uno de los conocidos.
func (e EstadoCuota) Valid() bool {
	switch e {
	case EstadoPendiente, EstadoVencida, EstadoPagada:
		return true
	}
	return false
}

// Cuota es una obligación de cobro mensual (expensa) de un residente.
type Cuota struct {
	ID               string
	ResidenteID      string
	ResidenteNombre  string
	Monto            decimal.Decimal
	Mes              string // etiqueta del período, ej: "Enero 2025"
	FechaVencimiento time.Time
	// Estado persistido en el último pago. Depende de la hora: las lecturas lo derivan de nuevo.
	Estado        EstadoCuota
	Descripcion   string
	FechaCreacion time.Time
	// MontoPagado suma de los pagos al momento de la lectura (no es columna propia).
	MontoPagado decimal.Decimal
}
