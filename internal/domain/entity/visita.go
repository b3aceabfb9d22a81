package entity

import "time"

// Estados del ciclo de vida de una visita (derivados de las marcas de entrada/salida).
const (
	VisitaProgramada = "programada"
	VisitaIngresada  = "ingresada"
	VisitaFinalizada = "finalizada"
)

// Visita registro de un visitante externo con su código QR de un solo uso.
type Visita struct {
	ID                 string
	ResidenteID        string
	ResidenteNombre    string
	Unidad             string
	NombreVisitante    string
	DocumentoVisitante string
	EntradaEsperada    time.Time
	SalidaEsperada     *time.Time
	CodigoQR           string
	HoraEntradaReal    *time.Time // se fija una sola vez (primer ingreso)
	HoraSalidaReal     *time.Time // solo si ya hubo ingreso
	Notas              string
	FechaCreacion      time.Time
}

// Estado devuelve programada, ingresada o finalizada.
func (v *Visita) Estado() string {
	switch {
	case v.HoraSalidaReal != nil:
		return VisitaFinalizada
	case v.HoraEntradaReal != nil:
		return VisitaIngresada
	default:
		return VisitaProgramada
	}
}
