package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/condominio-api/internal/domain"
	"github.com/jhoicas/condominio-api/internal/domain/entity"
	"github.com/jhoicas/condominio-api/internal/domain/repository"
)

func seed() *Store {
	s := NewStore()
	s.AddUnidad(entity.Unidad{ID: "u-1", Numero: "101", Torre: "Torre A", Activo: true})
	s.AddResidente(entity.Residente{ID: "r-1", Nombre: "Ana", UnidadID: "u-1", EsPropietario: true})
	return s
}

func TestTxRunner_RollbackDeshaceEscrituras(t *testing.T) {
	s := seed()
	ctx := context.Background()
	cuota := &entity.Cuota{ID: "c-1", ResidenteID: "r-1", Monto: decimal.NewFromInt(100), Estado: entity.EstadoPendiente}
	require.NoError(t, NewCuotaRepository(s).Create(ctx, cuota))

	boom := errors.New("boom")
	err := NewTxRunner(s).RunLedger(ctx, func(cuotas repository.CuotaRepository, pagos repository.PagoRepository) error {
		_, err := cuotas.GetForUpdate(ctx, "c-1")
		require.NoError(t, err)
		require.NoError(t, pagos.Create(ctx, &entity.Pago{ID: "p-1", CuotaID: "c-1", MontoPagado: decimal.NewFromInt(100)}))
		require.NoError(t, cuotas.UpdateEstado(ctx, "c-1", entity.EstadoPagada))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := NewCuotaRepository(s).GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPendiente, got.Estado)
	sum, err := NewPagoRepository(s).SumByCuota(ctx, "c-1")
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestTxRunner_LockReentranteYLiberado(t *testing.T) {
	s := seed()
	ctx := context.Background()
	require.NoError(t, NewCuotaRepository(s).Create(ctx, &entity.Cuota{ID: "c-1", ResidenteID: "r-1", Monto: decimal.NewFromInt(1)}))
	runner := NewTxRunner(s)

	for i := 0; i < 2; i++ {
		err := runner.RunLedger(ctx, func(cuotas repository.CuotaRepository, _ repository.PagoRepository) error {
			_, err := cuotas.GetForUpdate(ctx, "c-1")
			require.NoError(t, err)
			_, err = cuotas.GetForUpdate(ctx, "c-1")
			return err
		})
		require.NoError(t, err)
	}
}

func TestTxRunner_LockRespetaContexto(t *testing.T) {
	s := seed()
	release, err := s.acquire(context.Background(), "visita:abc")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = NewTxRunner(s).RunAccess(ctx, func(visitas repository.VisitaRepository) error {
		_, err := visitas.GetByCodigoForUpdate(ctx, "abc")
		return err
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestVisita_EntradaUnaSolaVez(t *testing.T) {
	s := seed()
	ctx := context.Background()
	repo := NewVisitaRepository(s)
	require.NoError(t, repo.Create(ctx, &entity.Visita{ID: "v-1", ResidenteID: "r-1", NombreVisitante: "Carlos", CodigoQR: "qr-1"}))

	err := repo.Create(ctx, &entity.Visita{ID: "v-2", ResidenteID: "r-1", CodigoQR: "qr-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.ErrorIs(t, repo.RegistrarSalida(ctx, "v-1", time.Now()), domain.ErrConflict)
	require.NoError(t, repo.RegistrarEntrada(ctx, "v-1", time.Now()))
	assert.ErrorIs(t, repo.RegistrarEntrada(ctx, "v-1", time.Now()), domain.ErrConflict)

	v, err := repo.getByCodigo(ctx, "qr-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", v.ResidenteNombre)
	assert.Equal(t, "Torre A - 101", v.Unidad)
	assert.Equal(t, entity.VisitaIngresada, v.Estado())
}

func TestVehiculo_PlacaUnica(t *testing.T) {
	s := seed()
	ctx := context.Background()
	repo := NewVehiculoRepository(s)
	require.NoError(t, repo.Create(ctx, &entity.Vehiculo{ID: "ve-1", ResidenteID: "r-1", Placa: "ABC123", Autorizado: true}))

	assert.ErrorIs(t, repo.Create(ctx, &entity.Vehiculo{ID: "ve-2", ResidenteID: "r-1", Placa: "ABC123"}), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Create(ctx, &entity.Vehiculo{ID: "ve-3", ResidenteID: "nadie", Placa: "XYZ1"}), domain.ErrNotFound)

	v, err := repo.GetByPlaca(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "Ana", v.ResidenteNombre)

	missing, err := repo.GetByPlaca(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCuota_CopiasIndependientes(t *testing.T) {
	s := seed()
	ctx := context.Background()
	repo := NewCuotaRepository(s)
	require.NoError(t, repo.Create(ctx, &entity.Cuota{ID: "c-1", ResidenteID: "r-1", Estado: entity.EstadoPendiente}))

	got, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	got.Estado = entity.EstadoPagada

	again, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPendiente, again.Estado)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{2, 3}, paginate(items, 2, 1))
	assert.Equal(t, []int{5}, paginate(items, 10, 4))
	assert.Empty(t, paginate(items, 10, 9))
}
