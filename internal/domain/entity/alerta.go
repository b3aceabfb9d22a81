package entity

import "time"

// AlertaSeguridad incidencia reportada por cámaras o guardias (registro externo, solo lectura).
type AlertaSeguridad struct {
	ID              string
	TipoAlerta      string // intruso, perro_suelto, vehiculo_sospechoso, actividad_inusual, otro
	Descripcion     string
	FechaHora       time.Time
	URLEvidencia    string
	ResidenteID     string
	ResidenteNombre string
	Resuelto        bool
}

// Estados de ticket de mantenimiento.
const (
	TicketAbierto   = "abierto"
	TicketEnProceso = "en_proceso"
	TicketResuelto  = "resuelto"
	TicketCerrado   = "cerrado"
)

// TicketMantenimiento proyección mínima de un ticket (registro externo, solo lectura).
type TicketMantenimiento struct {
	ID            string
	ResidenteID   string
	Titulo        string
	Prioridad     string
	Estado        string
	FechaCreacion time.Time
}

// Pendiente indica si el ticket sigue abierto o en proceso.
func (t TicketMantenimiento) Pendiente() bool {
	return t.Estado == TicketAbierto || t.Estado == TicketEnProceso
}
