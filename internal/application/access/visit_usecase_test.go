package access_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/condominio-api/internal/application/access"
	"github.com/jhoicas/condominio-api/internal/application/dto"
	"github.com/jhoicas/condominio-api/internal/application/ports"
	"github.com/jhoicas/condominio-api/internal/application/ports/mocks"
	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/infrastructure/memory"
)

func newVisitUseCase(store *memory.Store, pub *mocks.MockEventPublisher, metrics access.Metrics) *access.VisitUseCase {
	var publisher ports.EventPublisher
	if pub != nil {
		publisher = pub
	}
	return access.NewVisitUseCase(
		memory.NewTxRunner(store),
		memory.NewVisitaRepository(store),
		memory.NewResidenteRepository(store),
		publisher,
		metrics,
	).WithClock(func() time.Time { return testNow })
}

func issue(t *testing.T, uc *access.VisitUseCase) *dto.VisitaResponse {
	t.Helper()
	v, err := uc.IssueToken(context.Background(), dto.CreateVisitaRequest{
		ResidenteID:         "res-prop",
		NombreVisitante:     "Carlos Ruiz",
		DocumentoVisitante:  "1020304050",
		FechaVisita:         "2025-03-10",
		HoraEntradaEsperada: "09:00",
		HoraSalidaEsperada:  "18:00",
	})
	require.NoError(t, err)
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// IssueToken
// ──────────────────────────────────────────────────────────────────────────────

func TestIssueToken_GeneraCodigoUnico(t *testing.T) {
	uc := newVisitUseCase(seedStore(), nil, nil)

	a := issue(t, uc)
	b := issue(t, uc)

	assert.NotEmpty(t, a.CodigoQRAcceso)
	assert.Len(t, a.CodigoQRAcceso, 36)
	assert.NotEqual(t, a.CodigoQRAcceso, b.CodigoQRAcceso)
	assert.Equal(t, entity.VisitaProgramada, a.Estado)
	assert.Equal(t, "09:00", a.HoraEntradaEsperada)
	assert.Equal(t, "18:00", a.HoraSalidaEsperada)
	assert.Nil(t, a.HoraEntradaReal)
}

func TestIssueToken_Validaciones(t *testing.T) {
	uc := newVisitUseCase(seedStore(), nil, nil)
	ctx := context.Background()

	_, err := uc.IssueToken(ctx, dto.CreateVisitaRequest{ResidenteID: "res-prop", FechaVisita: "2025-03-10", HoraEntradaEsperada: "09:00"})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "nombre_visitante", ve.Field)

	_, err = uc.IssueToken(ctx, dto.CreateVisitaRequest{
		ResidenteID: "res-prop", NombreVisitante: "X", FechaVisita: "2025-03-10",
		HoraEntradaEsperada: "18:00", HoraSalidaEsperada: "09:00",
	})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "hora_salida_esperada", ve.Field)

	_, err = uc.IssueToken(ctx, dto.CreateVisitaRequest{
		ResidenteID: "no-existe", NombreVisitante: "X", FechaVisita: "2025-03-10", HoraEntradaEsperada: "09:00",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Redeem
// ──────────────────────────────────────────────────────────────────────────────

func TestRedeem_PrimerCanjeAutorizaYElSegundoRevelaIdentidad(t *testing.T) {
	store := seedStore()
	metrics := &recordingMetrics{}
	uc := newVisitUseCase(store, nil, metrics)
	ctx := context.Background()
	v := issue(t, uc)

	first, err := uc.Redeem(ctx, v.CodigoQRAcceso)
	require.NoError(t, err)
	assert.True(t, first.Autorizado)
	assert.Equal(t, access.MsgAccesoPermitido, first.Mensaje)
	require.NotNil(t, first.Visita)
	assert.Equal(t, "Carlos Ruiz", first.Visita.NombreVisitante)
	assert.Equal(t, "Ana Pérez", first.Visita.ResidenteNombre)
	assert.Equal(t, "Torre A - 101", first.Visita.Unidad)

	second, err := uc.Redeem(ctx, v.CodigoQRAcceso)
	require.NoError(t, err)
	assert.False(t, second.Autorizado)
	assert.Equal(t, access.MsgQRYaUtilizado, second.Mensaje)
	require.NotNil(t, second.Visita, "el rechazo por reutilización debe revelar al visitante")
	assert.Equal(t, *first.Visita, *second.Visita)

	stored, err := memory.NewVisitaRepository(store).GetByCodigoForUpdate(ctx, v.CodigoQRAcceso)
	require.NoError(t, err)
	require.NotNil(t, stored.HoraEntradaReal)
	assert.True(t, stored.HoraEntradaReal.Equal(testNow))

	assert.Equal(t, []string{entity.MotivoQRValido, entity.MotivoQRYaUtilizado}, metrics.motivos())
	assert.Equal(t, 2, metrics.redeems)
}

func TestRedeem_CodigoInexistente(t *testing.T) {
	uc := newVisitUseCase(seedStore(), nil, nil)

	res, err := uc.Redeem(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.False(t, res.Autorizado)
	assert.Equal(t, access.MsgQRInvalido, res.Mensaje)
	assert.Nil(t, res.Visita)
}

func TestRedeem_CodigoVacio(t *testing.T) {
	uc := newVisitUseCase(seedStore(), nil, nil)

	_, err := uc.Redeem(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRedeem_ConcurrenteSoloUnoAutorizado(t *testing.T) {
	uc := newVisitUseCase(seedStore(), nil, nil)
	v := issue(t, uc)

	const n = 25
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			res, err := uc.Redeem(context.Background(), v.CodigoQRAcceso)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if res.Autorizado {
				accepted++
			} else {
				rejected++
				assert.Equal(t, access.MsgQRYaUtilizado, res.Mensaje)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, n-1, rejected)
}

func TestRedeem_PublicaEventoDeAuditoria(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockEventPublisher(ctrl)
	uc := newVisitUseCase(seedStore(), pub, nil)
	v := issue(t, uc)

	var got []entity.AccessEvent
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev entity.AccessEvent) error {
			got = append(got, ev)
			return nil
		}).Times(2)

	_, err := uc.Redeem(context.Background(), v.CodigoQRAcceso)
	require.NoError(t, err)
	_, err = uc.Redeem(context.Background(), "desconocido")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, entity.CanalQR, got[0].Canal)
	assert.Equal(t, entity.DecisionPermitido, got[0].Decision)
	assert.Equal(t, "res-prop", got[0].ResidenteID)
	assert.Equal(t, entity.DecisionDenegado, got[1].Decision)
	assert.Equal(t, entity.MotivoQRInexistente, got[1].Motivo)
	assert.Empty(t, got[1].ResidenteID)
}

func TestRedeem_FalloAlPublicarNoCambiaLaDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockEventPublisher(ctrl)
	uc := newVisitUseCase(seedStore(), pub, nil)
	v := issue(t, uc)

	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker caído"))

	res, err := uc.Redeem(context.Background(), v.CodigoQRAcceso)
	require.NoError(t, err)
	assert.True(t, res.Autorizado)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordDeparture
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordDeparture_SoloDespuesDeIngresar(t *testing.T) {
	store := seedStore()
	uc := newVisitUseCase(store, nil, nil)
	repo := memory.NewVisitaRepository(store)
	ctx := context.Background()
	v := issue(t, uc)

	require.NoError(t, uc.RecordDeparture(ctx, v.CodigoQRAcceso))
	stored, err := repo.GetByCodigoForUpdate(ctx, v.CodigoQRAcceso)
	require.NoError(t, err)
	assert.Nil(t, stored.HoraSalidaReal, "sin ingreso no se registra salida")

	_, err = uc.Redeem(ctx, v.CodigoQRAcceso)
	require.NoError(t, err)
	require.NoError(t, uc.RecordDeparture(ctx, v.CodigoQRAcceso))

	stored, err = repo.GetByCodigoForUpdate(ctx, v.CodigoQRAcceso)
	require.NoError(t, err)
	require.NotNil(t, stored.HoraSalidaReal)
	assert.Equal(t, entity.VisitaFinalizada, stored.Estado())

	require.NoError(t, uc.RecordDeparture(ctx, v.CodigoQRAcceso), "segunda salida es no-op")
	require.NoError(t, uc.RecordDeparture(ctx, "desconocido"))
}
