package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pago registro inmutable de dinero aplicado a una cuota.
type Pago struct {
	ID                    string
	CuotaID               string
	MontoPagado           decimal.Decimal
	FechaPago             time.Time
	MetodoPago            string
	ReferenciaComprobante string
	Notas                 string
}
