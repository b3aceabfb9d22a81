package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/condominio-api/docs"
	"github.com/jhoicas/condominio-api/internal/application/access"
	appanalytics "github.com/jhoicas/condominio-api/internal/application/analytics"
	"github.com/jhoicas/condominio-api/internal/application/billing"
	"github.com/jhoicas/condominio-api/internal/application/ports"
	"github.com/jhoicas/condominio-api/internal/application/usecase"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	infraai "github.com/jhoicas/condominio-api/internal/infrastructure/ai"
	"github.com/jhoicas/condominio-api/internal/infrastructure/events"
	"github.com/jhoicas/condominio-api/internal/infrastructure/memory"
	"github.com/jhoicas/condominio-api/internal/infrastructure/metrics"
	"github.com/jhoicas/condominio-api/internal/infrastructure/padron"
	"github.com/jhoicas/condominio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/condominio-api/internal/interfaces/http"
	"github.com/jhoicas/condominio-api/pkg/config"
	"github.com/jhoicas/condominio-api/pkg/logger"
)

// storage agrupa los adaptadores del driver elegido.
type storage struct {
	tx interface {
		billing.LedgerTxRunner
		access.AccessTxRunner
	}
	cuotas     repository.CuotaRepository
	pagos      repository.PagoRepository
	visitas    repository.VisitaRepository
	vehiculos  repository.VehiculoRepository
	residentes repository.ResidenteRepository
	dashboard  repository.DashboardRepository
	close      func()
}

// @title        Smart Condominio API
// @version      1.0
// @description  Validación de accesos en portería y conciliación de cuotas.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.StorageDriver).
		Msg("iniciando aplicación")

	// Los montos se serializan como números JSON.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	st, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	// Auditoría de portería: siempre al log; a Kafka si hay brokers.
	var publisher ports.EventPublisher = events.NewLogPublisher(log)
	if cfg.Kafka.Enabled() {
		kafkaPub, err := events.NewKafkaPublisher(cfg.Kafka)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Kafka")
		}
		defer kafkaPub.Close()
		publisher = events.Multi{publisher, kafkaPub}
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.AccessTopic).Msg("eventos de acceso a Kafka")
	}

	var verifier ports.FacialVerifier
	if svc := infraai.NewFacialService(cfg.Facial); svc != nil {
		verifier = svc
	} else {
		log.Warn().Msg("FACIAL_API_URL no configurado: verificación facial en modo demostración")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	ledgerUC := billing.NewLedgerUseCase(st.tx, st.cuotas, st.pagos, st.residentes, m)
	visitUC := access.NewVisitUseCase(st.tx, st.visitas, st.residentes, publisher, m)
	vehicleUC := access.NewVehicleUseCase(st.vehiculos, st.residentes, publisher, m)
	facialUC := access.NewFacialUseCase(verifier, st.residentes, publisher, m, cfg.App.MediaBaseURL)
	residentUC := usecase.NewResidentUseCase(st.residentes)
	dashboardUC := appanalytics.NewDashboardUseCase(st.dashboard)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 << 20, // fotos de la cámara facial
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Smart Condominio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:      ledgerUC,
		Visits:      visitUC,
		Vehicles:    vehicleUC,
		Facial:      facialUC,
		Residents:   residentUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
		Gatherer:    prometheus.DefaultGatherer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage abre PostgreSQL (aplicando el esquema) o el almacenamiento en memoria.
func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.App.StorageDriver == config.StorageDriverMemory {
		store := memory.NewStore()
		if cfg.App.PadronFile != "" {
			p, err := padron.Load(cfg.App.PadronFile)
			if err != nil {
				return nil, err
			}
			for _, u := range p.Unidades {
				store.AddUnidad(u)
			}
			for _, r := range p.Residentes {
				store.AddResidente(r)
			}
		}
		return &storage{
			tx:         memory.NewTxRunner(store),
			cuotas:     memory.NewCuotaRepository(store),
			pagos:      memory.NewPagoRepository(store),
			visitas:    memory.NewVisitaRepository(store),
			vehiculos:  memory.NewVehiculoRepository(store),
			residentes: memory.NewResidenteRepository(store),
			dashboard:  memory.NewDashboardRepository(store),
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &storage{
		tx:         postgres.NewTxRunner(pool),
		cuotas:     postgres.NewCuotaRepository(pool),
		pagos:      postgres.NewPagoRepository(pool),
		visitas:    postgres.NewVisitaRepository(pool),
		vehiculos:  postgres.NewVehiculoRepository(pool),
		residentes: postgres.NewResidenteRepository(pool),
		dashboard:  postgres.NewDashboardRepository(pool),
		close:      pool.Close,
	}, nil
}
