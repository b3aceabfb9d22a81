package dto

import "github.com/shopspring/decimal"

// UpdateRiskScoreRequest body de POST /api/residents/:id/update-risk-score.
type UpdateRiskScoreRequest struct {
	ScoreMorosidadIA *decimal.Decimal `json:"score_morosidad_ia"`
}

// ResidenteResponse proyección del residente.
type ResidenteResponse struct {
	ID                 string           `json:"id"`
	Nombre             string           `json:"nombre"`
	UnidadHabitacional string           `json:"unidad_habitacional"`
	Unidad             string           `json:"unidad"`
	Telefono           string           `json:"telefono,omitempty"`
	EsPropietario      bool             `json:"es_propietario"`
	ScoreMorosidadIA   *decimal.Decimal `json:"score_morosidad_ia"`
	FotoPerfil         *string          `json:"foto_perfil,omitempty"`
}

// UpdateRiskScoreResponse respuesta de la actualización del score.
type UpdateRiskScoreResponse struct {
	Mensaje   string            `json:"mensaje"`
	Residente ResidenteResponse `json:"residente"`
}
