package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/condominio-api/internal/application/billing"
	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/pkg/jwt"
)

// BillingHandler cuotas y pagos del libro de cobros.
type BillingHandler struct {
	uc *billing.LedgerUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(uc *billing.LedgerUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// CreateCuota godoc
// @Summary      Crear cuota
// @Tags         cuotas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCuotaRequest  true  "Datos de la cuota"
// @Success      201   {object}  dto.CuotaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cuotas [post]
func (h *BillingHandler) CreateCuota(c *fiber.Ctx) error {
	var in dto.CreateCuotaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateObligation(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCuotas godoc
// @Summary      Listar cuotas
// @Description  Un residente solo ve sus propias cuotas.
// @Tags         cuotas
// @Security     Bearer
// @Produce      json
// @Param        residente  query  string  false  "ID del residente"
// @Param        estado     query  string  false  "pendiente | vencida | pagada"
// @Param        limit      query  int     false  "Límite (default 20)"
// @Param        offset     query  int     false  "Offset"
// @Success      200  {array}   dto.CuotaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cuotas [get]
func (h *BillingHandler) ListCuotas(c *fiber.Ctx) error {
	var q dto.ListCuotasQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	if GetRole(c) == jwt.RoleResidente {
		q.ResidenteID = GetResidenteID(c)
	}
	out, err := h.uc.ListObligations(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCuota godoc
// @Summary      Obtener cuota por ID
// @Tags         cuotas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuota"
// @Success      200  {object}  dto.CuotaResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cuotas/{id} [get]
func (h *BillingHandler) GetCuota(c *fiber.Ctx) error {
	out, err := h.uc.GetObligation(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if !canSee(c, out.Residente) {
		return respondError(c, domain.ErrForbidden)
	}
	return c.JSON(out)
}

// GetSaldo godoc
// @Summary      Saldo de una cuota
// @Tags         cuotas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuota"
// @Success      200  {object}  dto.SaldoCuotaResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cuotas/{id}/saldo [get]
func (h *BillingHandler) GetSaldo(c *fiber.Ctx) error {
	id := c.Params("id")
	if GetRole(c) == jwt.RoleResidente {
		if ok, err := h.ownCuota(c, id); !ok {
			return err
		}
	}
	out, err := h.uc.Balance(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPagos godoc
// @Summary      Pagos de una cuota
// @Tags         cuotas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuota"
// @Success      200  {array}   dto.PagoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cuotas/{id}/pagos [get]
func (h *BillingHandler) ListPagos(c *fiber.Ctx) error {
	id := c.Params("id")
	if GetRole(c) == jwt.RoleResidente {
		if ok, err := h.ownCuota(c, id); !ok {
			return err
		}
	}
	out, err := h.uc.ListPayments(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreatePago godoc
// @Summary      Registrar pago
// @Description  Aplica el pago y recalcula el estado de la cuota en la misma transacción.
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePagoRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PagoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pagos [post]
func (h *BillingHandler) CreatePago(c *fiber.Ctx) error {
	var in dto.CreatePagoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ApplyPayment(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ownCuota verifica que la cuota pertenezca al residente del token. Si no, ok es false y la
// respuesta de error ya quedó escrita.
func (h *BillingHandler) ownCuota(c *fiber.Ctx, id string) (ok bool, err error) {
	out, err := h.uc.GetObligation(c.UserContext(), id)
	if err != nil {
		return false, respondError(c, err)
	}
	if !canSee(c, out.Residente) {
		return false, respondError(c, domain.ErrForbidden)
	}
	return true, nil
}

// canSee un residente solo accede a lo suyo; el personal del condominio a todo.
func canSee(c *fiber.Ctx, residenteID string) bool {
	return GetRole(c) != jwt.RoleResidente || residenteID == GetResidenteID(c)
}
