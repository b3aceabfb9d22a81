package entity

import "time"

// Canales de acceso.
const (
	CanalQR     = "qr"
	CanalPlaca  = "placa"
	CanalFacial = "facial"
)

// Decisiones de acceso.
const (
	DecisionPermitido = "permitido"
	DecisionDenegado  = "denegado"
)

// Motivos internos de la decisión. El cliente solo ve permitido/denegado; la auditoría
// necesita distinguir por qué se negó.
const (
	MotivoQRValido             = "qr_valido"
	MotivoQRInexistente        = "qr_inexistente"
	MotivoQRYaUtilizado        = "qr_ya_utilizado"
	MotivoVehiculoAutorizado   = "vehiculo_autorizado"
	MotivoPlacaNoRegistrada    = "placa_no_registrada"
	MotivoVehiculoNoAutorizado = "vehiculo_no_autorizado"
	MotivoRostroVerificado     = "rostro_verificado"
	MotivoRostroDemo           = "rostro_demo"
)

// AccessEvent evento de auditoría emitido por cada decisión de acceso en portería.
type AccessEvent struct {
	ID          string    `json:"id"`
	Canal       string    `json:"canal"`
	Credencial  string    `json:"credencial"`
	Decision    string    `json:"decision"`
	Motivo      string    `json:"motivo"`
	ResidenteID string    `json:"residente_id,omitempty"`
	OcurridoEn  time.Time `json:"ocurrido_en"`
}

// Permitido indica si la decisión fue de ingreso.
func (e AccessEvent) Permitido() bool {
	return e.Decision == DecisionPermitido
}
