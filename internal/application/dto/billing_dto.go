package dto

import "github.com/shopspring/decimal"

// DateLayout formato de fechas sin hora en requests y respuestas.
const DateLayout = "2006-01-02"

// CreateCuotaRequest body para POST /api/cuotas.
// El estado no se recibe: lo deriva el libro de cobros.
type CreateCuotaRequest struct {
	ResidenteID      string          `json:"residente_id"`
	Mes              string          `json:"mes"`
	Monto            decimal.Decimal `json:"monto"`
	FechaVencimiento string          `json:"fecha_vencimiento"` // YYYY-MM-DD
	Descripcion      string          `json:"descripcion,omitempty"`
}

// CuotaResponse cuota en respuestas.
type CuotaResponse struct {
	ID               string          `json:"id"`
	Residente        string          `json:"residente"`
	ResidenteNombre  string          `json:"residente_nombre,omitempty"`
	Monto            decimal.Decimal `json:"monto"`
	Mes              string          `json:"mes"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	Estado           string          `json:"estado"`
	Descripcion      string          `json:"descripcion,omitempty"`
	FechaCreacion    string          `json:"fecha_creacion"`
}

// ListCuotasQuery filtros de GET /api/cuotas.
type ListCuotasQuery struct {
	ResidenteID string `query:"residente"`
	Estado      string `query:"estado"`
	Limit       int    `query:"limit"`
	Offset      int    `query:"offset"`
}

// SaldoCuotaResponse respuesta de GET /api/cuotas/:id/saldo.
type SaldoCuotaResponse struct {
	CuotaID        string          `json:"cuota_id"`
	Monto          decimal.Decimal `json:"monto"`
	MontoPagado    decimal.Decimal `json:"monto_pagado"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
	Estado         string          `json:"estado"`
}

// CreatePagoRequest body para POST /api/pagos.
type CreatePagoRequest struct {
	CuotaID               string          `json:"cuota_id"`
	MontoPagado           decimal.Decimal `json:"monto_pagado"`
	MetodoPago            string          `json:"metodo_pago,omitempty"`
	ReferenciaComprobante string          `json:"referencia_comprobante,omitempty"`
	Notas                 string          `json:"notas,omitempty"`
}

// PagoResponse pago registrado. CuotaDetalle refleja la cuota después del pago.
type PagoResponse struct {
	ID                    string          `json:"id"`
	Cuota                 string          `json:"cuota"`
	MontoPagado           decimal.Decimal `json:"monto_pagado"`
	FechaPago             string          `json:"fecha_pago"`
	MetodoPago            string          `json:"metodo_pago,omitempty"`
	ReferenciaComprobante string          `json:"referencia_comprobante,omitempty"`
	Notas                 string          `json:"notas,omitempty"`
	CuotaDetalle          *CuotaResponse  `json:"cuota_detalle,omitempty"`
}
