package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/condominio-api/internal/application/access"
	appanalytics "github.com/jhoicas/condominio-api/internal/application/analytics"
	"github.com/jhoicas/condominio-api/internal/application/billing"
	"github.com/jhoicas/condominio-api/internal/application/usecase"
	"github.com/jhoicas/condominio-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger      *billing.LedgerUseCase
	Visits      *access.VisitUseCase
	Vehicles    *access.VehicleUseCase
	Facial      *access.FacialUseCase
	Residents   *usecase.ResidentUseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
	// Gatherer expone /metrics; nil lo omite.
	Gatherer prometheus.Gatherer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Todas las rutas de /api requieren Bearer Token
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	staff := RequireRole(jwt.RoleAdmin)

	// Portería
	accessHandler := NewAccessHandler(deps.Visits, deps.Vehicles, deps.Facial)
	acc := api.Group("/access", RequireRole(jwt.RoleGuardia, jwt.RoleAdmin))
	acc.Post("/validate-plate", accessHandler.ValidatePlate)
	acc.Post("/validate-qr", accessHandler.ValidateQR)
	acc.Post("/validate-facial", accessHandler.ValidateFacial)

	// Libro de cobros
	billingHandler := NewBillingHandler(deps.Ledger)
	readers := RequireRole(jwt.RoleAdmin, jwt.RoleResidente)
	cuotas := api.Group("/cuotas")
	cuotas.Post("/", staff, billingHandler.CreateCuota)
	cuotas.Get("/", readers, billingHandler.ListCuotas)
	cuotas.Get("/:id", readers, billingHandler.GetCuota)
	cuotas.Get("/:id/saldo", readers, billingHandler.GetSaldo)
	cuotas.Get("/:id/pagos", readers, billingHandler.ListPagos)
	api.Post("/pagos", staff, billingHandler.CreatePago)

	// Registro de visitas y vehículos
	registryHandler := NewRegistryHandler(deps.Visits, deps.Vehicles)
	api.Post("/visitas", readers, registryHandler.CreateVisita)
	api.Post("/visitas/:codigo/salida", RequireRole(jwt.RoleGuardia, jwt.RoleAdmin), registryHandler.RegistrarSalida)
	api.Post("/vehiculos", staff, registryHandler.CreateVehiculo)

	// Residentes (integración con el servicio de IA)
	residentHandler := NewResidentHandler(deps.Residents)
	api.Post("/residents/:id/update-risk-score", RequireRole(jwt.RoleAdmin, jwt.RoleServicio), residentHandler.UpdateRiskScore)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", staff, dashboardHandler.GetSummary)
}
