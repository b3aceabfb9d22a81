package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// MsgScoreActualizado mensaje de confirmación para el servicio de IA.
const MsgScoreActualizado = "Score de morosidad actualizado correctamente"

var (
	scoreMin = decimal.Zero
	scoreMax = decimal.NewFromInt(100)
)

// ResidentUseCase operaciones sobre residentes expuestas a integraciones externas.
// El registro de residentes es externo; aquí solo se escribe el score de morosidad.
type ResidentUseCase struct {
	repo repository.ResidenteRepository
}

// NewResidentUseCase construye el caso de uso con el puerto de persistencia.
func NewResidentUseCase(repo repository.ResidenteRepository) *ResidentUseCase {
	return &ResidentUseCase{repo: repo}
}

// UpdateRiskScore guarda el score calculado por la IA externa (0 a 100, dos decimales).
// Un score inválido no toca el almacenamiento.
func (uc *ResidentUseCase) UpdateRiskScore(ctx context.Context, residenteID string, in dto.UpdateRiskScoreRequest) (*dto.UpdateRiskScoreResponse, error) {
	residenteID = strings.TrimSpace(residenteID)
	if residenteID == "" {
		return nil, domain.NewValidationError("id", "es requerido")
	}
	if in.ScoreMorosidadIA == nil {
		return nil, domain.NewValidationError("score_morosidad_ia", "es requerido")
	}
	score := *in.ScoreMorosidadIA
	if score.LessThan(scoreMin) || score.GreaterThan(scoreMax) {
		return nil, domain.NewValidationError("score_morosidad_ia", "debe estar entre 0 y 100")
	}
	score = score.Round(2)

	residente, err := uc.repo.GetByID(ctx, residenteID)
	if err != nil {
		return nil, fmt.Errorf("buscar residente: %w", err)
	}
	if residente == nil {
		return nil, domain.NewNotFoundError("residente", residenteID)
	}
	if err := uc.repo.UpdateRiskScore(ctx, residente.ID, score); err != nil {
		return nil, fmt.Errorf("actualizar score: %w", err)
	}
	residente.ScoreMorosidadIA = &score

	return &dto.UpdateRiskScoreResponse{
		Mensaje:   MsgScoreActualizado,
		Residente: entityToResidenteResponse(residente),
	}, nil
}

func entityToResidenteResponse(r *entity.Residente) dto.ResidenteResponse {
	resp := dto.ResidenteResponse{
		ID:                 r.ID,
		Nombre:             r.Nombre,
		UnidadHabitacional: r.UnidadID,
		Unidad:             r.Unidad,
		Telefono:           r.Telefono,
		EsPropietario:      r.EsPropietario,
		ScoreMorosidadIA:   r.ScoreMorosidadIA,
	}
	if r.FotoPerfil != "" {
		foto := r.FotoPerfil
		resp.FotoPerfil = &foto
	}
	return resp
}
