package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/medimeet/mocks/port/core"
)

var uowNow = time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)

func newTestUnitOfWork(t *testing.T) (*TestDBManager, *entity.User) {
	t.Helper()

	tdb := NewTestDBManager(t, mockcore.NewFixedTimeProvider(t, uowNow), nil)
	patient := tdb.CreateTestUser(t, "ext_patient", entity.RolePatient, 10)
	return tdb, patient
}

func TestUnitOfWork_DoCommits(t *testing.T) {
	tdb, patient := newTestUnitOfWork(t)
	uow := tdb.Manager.CreateUnitOfWork()
	ctx := context.Background()

	err := uow.Do(ctx, func(ctx context.Context) error {
		entry, err := entity.NewAppointmentDeduction(patient.ID, -entity.AppointmentCost, tdb.TimeProvider)
		if err != nil {
			return err
		}
		if err := uow.GetCreditTransactionRepository(ctx).Create(ctx, entry); err != nil {
			return err
		}
		_, err = uow.GetUserRepository(ctx).AdjustCredits(ctx, patient.ID, -entity.AppointmentCost)
		return err
	})
	require.NoError(t, err)

	stored, err := uow.GetUserRepository(ctx).GetByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), stored.Credits())

	sum, err := uow.GetCreditTransactionRepository(ctx).SumByUser(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, -entity.AppointmentCost, sum)
}

func TestUnitOfWork_DoRollsBackOnError(t *testing.T) {
	tdb, patient := newTestUnitOfWork(t)
	uow := tdb.Manager.CreateUnitOfWork()
	ctx := context.Background()
	failure := errors.New("boom")

	err := uow.Do(ctx, func(ctx context.Context) error {
		if _, err := uow.GetUserRepository(ctx).AdjustCredits(ctx, patient.ID, -4); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)

	stored, err := uow.GetUserRepository(ctx).GetByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.Credits())
}

func TestUnitOfWork_DoRollsBackOnPanic(t *testing.T) {
	tdb, patient := newTestUnitOfWork(t)
	uow := tdb.Manager.CreateUnitOfWork()
	ctx := context.Background()

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.Do(ctx, func(ctx context.Context) error {
			if _, err := uow.GetUserRepository(ctx).AdjustCredits(ctx, patient.ID, 5); err != nil {
				return err
			}
			panic("boom")
		})
	})

	stored, err := uow.GetUserRepository(ctx).GetByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.Credits())
}

func TestUnitOfWork_NestedDoJoinsOuterTransaction(t *testing.T) {
	tdb, patient := newTestUnitOfWork(t)
	uow := tdb.Manager.CreateUnitOfWork()
	ctx := context.Background()
	failure := errors.New("outer failed")

	err := uow.Do(ctx, func(ctx context.Context) error {
		inner := uow.Do(ctx, func(ctx context.Context) error {
			_, err := uow.GetUserRepository(ctx).AdjustCredits(ctx, patient.ID, 24)
			return err
		})
		require.NoError(t, inner)
		return failure
	})
	assert.ErrorIs(t, err, failure)

	// the inner work was not committed on its own
	stored, err := uow.GetUserRepository(ctx).GetByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.Credits())
}

func TestUnitOfWork_ExplicitBeginCommitRollback(t *testing.T) {
	tdb, patient := newTestUnitOfWork(t)
	uow := tdb.Manager.CreateUnitOfWork()
	ctx := context.Background()

	assert.Error(t, uow.Commit(ctx))
	assert.Error(t, uow.Rollback(ctx))

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	_, err = uow.GetUserRepository(txCtx).AdjustCredits(txCtx, patient.ID, 1)
	require.NoError(t, err)
	require.NoError(t, uow.Commit(txCtx))

	// rolling back a committed transaction is tolerated
	assert.NoError(t, uow.Rollback(txCtx))

	stored, err := uow.GetUserRepository(ctx).GetByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(11), stored.Credits())
}

func TestUnitOfWork_RepositoryErrorsPassThrough(t *testing.T) {
	tdb, _ := newTestUnitOfWork(t)
	uow := tdb.Manager.CreateUnitOfWork()

	err := uow.Do(context.Background(), func(ctx context.Context) error {
		_, err := uow.GetAppointmentRepository(ctx).GetByID(ctx, "missing")
		return err
	})
	assert.ErrorIs(t, err, errs.ErrAppointmentNotFound)

	err = uow.Do(context.Background(), func(ctx context.Context) error {
		_, err := uow.GetAvailabilityRepository(ctx).GetByID(ctx, "missing")
		return err
	})
	assert.ErrorIs(t, err, errs.ErrSlotNotFound)
}

func TestManager_PingAndClose(t *testing.T) {
	tdb, _ := newTestUnitOfWork(t)

	assert.NoError(t, tdb.Manager.Ping(context.Background()))
	assert.Equal(t, 1, tdb.Manager.PoolMetrics().MaxOpenConnections)

	ctx, cancel := tdb.Manager.WithTimeout(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(tdb.Config.QueryTimeout), deadline, time.Second)
}

func TestManager_ConnectRejectsInvalidConfig(t *testing.T) {
	manager := NewManager(&Config{Driver: "oracle"}, mockcore.NewPermissiveLogger(t), mockcore.NewFixedTimeProvider(t, uowNow))

	_, err := manager.Connect(context.Background())
	assert.ErrorContains(t, err, "unsupported database driver")
	assert.Error(t, manager.Ping(context.Background()))
	assert.Error(t, manager.Migrate(context.Background()))
	assert.NoError(t, manager.Close())
}
