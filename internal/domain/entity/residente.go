package entity

import "github.com/shopspring/decimal"

// Residente es la proyección de solo lectura del residente (registro externo) con su nombre
// visible cacheado y la unidad a la que pertenece.
type Residente struct {
	ID            string
	Nombre        string
	UnidadID      string
	Unidad        string // etiqueta de la unidad (Unidad.Label)
	Telefono      string
	EsPropietario bool
	FotoPerfil    string
	// ScoreMorosidadIA lo calcula un servicio de IA externo (0-100). Nil si aún no existe.
	ScoreMorosidadIA *decimal.Decimal
}
