// Package analytics contiene el caso de uso del dashboard de administración del condominio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const dashboardRecentAlerts = 5 // alertas en el widget de actividad reciente

var meses = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// DashboardUseCase genera el resumen del condominio.
//
// Fuente de datos: DashboardRepository (consultas read-only). Se recalcula en cada
// llamada, sin caché.
type DashboardUseCase struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary ejecuta las siete consultas en paralelo. Si alguna falla, falla todo el resumen.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	var (
		occupancy  repository.OccupancyResult
		residentes int
		deuda      decimal.Decimal
		recaudado  decimal.Decimal
		alertas    int
		tickets    int
		recientes  []*entity.AlertaSeguridad
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		occupancy, err = uc.repo.GetOccupancy(gctx)
		return wrap("ocupación", err)
	})
	g.Go(func() (err error) {
		residentes, err = uc.repo.CountResidents(gctx)
		return wrap("residentes", err)
	})
	g.Go(func() (err error) {
		deuda, err = uc.repo.GetOutstandingBalance(gctx)
		return wrap("deuda pendiente", err)
	})
	g.Go(func() (err error) {
		recaudado, err = uc.repo.GetTotalCollected(gctx)
		return wrap("recaudación", err)
	})
	g.Go(func() (err error) {
		alertas, err = uc.repo.CountUnresolvedAlerts(gctx)
		return wrap("alertas activas", err)
	})
	g.Go(func() (err error) {
		tickets, err = uc.repo.CountOpenTickets(gctx)
		return wrap("tickets pendientes", err)
	})
	g.Go(func() (err error) {
		recientes, err = uc.repo.RecentAlerts(gctx, dashboardRecentAlerts)
		return wrap("alertas recientes", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]dto.AlertaResponse, 0, len(recientes))
	for _, a := range recientes {
		items = append(items, toAlertaResponse(a))
	}

	return &dto.DashboardResponse{
		KPIs: dto.DashboardKPIs{
			TotalResidentes:     residentes,
			OcupacionPorcentaje: OccupancyPercent(occupancy),
			AlertasActivas:      alertas,
			TicketsPendientes:   tickets,
			RecaudacionTotal:    recaudado,
			DeudaPendiente:      deuda,
		},
		Graficos: dto.DashboardGraficos{
			Finanzas: dto.ChartSerie{
				Labels: []string{"Pagado", "Por Cobrar"},
				Data:   []decimal.Decimal{recaudado, deuda},
			},
		},
		ActividadReciente: dto.ActividadReciente{Alertas: items},
		Periodo:           PeriodLabel(uc.now()),
	}, nil
}

// OccupancyPercent unidades activas ocupadas sobre unidades activas, en porcentaje con un
// decimal. Sin unidades activas devuelve 0.
func OccupancyPercent(o repository.OccupancyResult) decimal.Decimal {
	if o.ActiveUnits <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(o.OccupiedUnits)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(o.ActiveUnits))).
		Round(1)
}

// PeriodLabel etiqueta del mes en curso, ej: "Marzo 2025".
func PeriodLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", meses[t.Month()-1], t.Year())
}

func toAlertaResponse(a *entity.AlertaSeguridad) dto.AlertaResponse {
	return dto.AlertaResponse{
		ID:                   a.ID,
		TipoAlerta:           a.TipoAlerta,
		Descripcion:          a.Descripcion,
		FechaHora:            a.FechaHora.Format(time.RFC3339),
		URLEvidencia:         a.URLEvidencia,
		ResidenteRelacionado: a.ResidenteID,
		ResidenteNombre:      a.ResidenteNombre,
		Resuelto:             a.Resuelto,
	}
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard %s: %w", what, err)
	}
	return nil
}
