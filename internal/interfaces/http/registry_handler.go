package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/condominio-api/internal/application/access"
	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/pkg/jwt"
)

// RegistryHandler alta de visitas y vehículos autorizados.
type RegistryHandler struct {
	visitas   *access.VisitUseCase
	vehiculos *access.VehicleUseCase
}

// NewRegistryHandler construye el handler.
func NewRegistryHandler(visitas *access.VisitUseCase, vehiculos *access.VehicleUseCase) *RegistryHandler {
	return &RegistryHandler{visitas: visitas, vehiculos: vehiculos}
}

// CreateVisita godoc
// @Summary      Programar visita
// @Description  Genera el código QR de un solo uso. Un residente solo programa visitas propias.
// @Tags         visitas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVisitaRequest  true  "Datos de la visita"
// @Success      201   {object}  dto.VisitaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/visitas [post]
func (h *RegistryHandler) CreateVisita(c *fiber.Ctx) error {
	var in dto.CreateVisitaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if GetRole(c) == jwt.RoleResidente {
		in.ResidenteID = GetResidenteID(c)
	}
	out, err := h.visitas.IssueToken(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarSalida godoc
// @Summary      Registrar salida de visitante
// @Description  Sin efecto si el visitante no ingresó o la salida ya estaba registrada.
// @Tags         visitas
// @Security     Bearer
// @Param        codigo  path  string  true  "Código QR de la visita"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/visitas/{codigo}/salida [post]
func (h *RegistryHandler) RegistrarSalida(c *fiber.Ctx) error {
	if err := h.visitas.RecordDeparture(c.UserContext(), c.Params("codigo")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateVehiculo godoc
// @Summary      Registrar vehículo autorizado
// @Tags         vehiculos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVehiculoRequest  true  "Datos del vehículo"
// @Success      201   {object}  dto.VehiculoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vehiculos [post]
func (h *RegistryHandler) CreateVehiculo(c *fiber.Ctx) error {
	var in dto.CreateVehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.vehiculos.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
