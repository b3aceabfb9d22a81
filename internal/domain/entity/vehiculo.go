package entity

import "time"

// Vehiculo vehículo autorizado para ingreso automático. Placa siempre normalizada.
type Vehiculo struct {
	ID              string
	ResidenteID     string
	ResidenteNombre string
	Unidad          string
	Placa           string
	Marca           string
	Modelo          string
	Color           string
	TipoVehiculo    string
	Autorizado      bool
	FechaRegistro   time.Time
}
