package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/application/usecase"
	"github.com/jhoicas/condominio-api/internal/domain"
)

// ResidentHandler integración con el servicio externo que calcula el riesgo de morosidad.
type ResidentHandler struct {
	uc *usecase.ResidentUseCase
}

// NewResidentHandler construye el handler.
func NewResidentHandler(uc *usecase.ResidentUseCase) *ResidentHandler {
	return &ResidentHandler{uc: uc}
}

// UpdateRiskScore godoc
// @Summary      Actualizar score de morosidad
// @Tags         residents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del residente"
// @Param        body  body  dto.UpdateRiskScoreRequest  true  "Score entre 0 y 100"
// @Success      200   {object}  dto.UpdateRiskScoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/residents/{id}/update-risk-score [post]
func (h *ResidentHandler) UpdateRiskScore(c *fiber.Ctx) error {
	var in dto.UpdateRiskScoreRequest
	if err := c.BodyParser(&in); err != nil {
		// Un valor no numérico falla al decodificar el decimal.
		return respondError(c, domain.NewValidationError("score_morosidad_ia", "debe ser un número"))
	}
	out, err := h.uc.UpdateRiskScore(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
