package postgresql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/allseasons/tiredepot/internal/db/mocks"
	"github.com/allseasons/tiredepot/internal/depot"
	"github.com/allseasons/tiredepot/internal/repository"
	"github.com/allseasons/tiredepot/internal/repository/postgresql"
)

func TestSlotRepo_Transition(t *testing.T) {
	ctx := context.Background()
	layoutID := uuid.New()
	coord := depot.Coordinate{Corridor: "A", Rack: 1, Slot: 1}

	t.Run("claim writes slot and counters in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewSlotRepo(mockDB)
		custodyID := uuid.New()

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		gomock.InOrder(
			mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
					assert.Contains(t, query, "ON CONFLICT")
					assert.Contains(t, query, "slot_states.status = $7")
					assert.Equal(t, "occupied", args[4])
					assert.Equal(t, "available", args[6])
					return pgconn.CommandTag("INSERT 0 1"), nil
				}),
			mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
					assert.Contains(t, query, "occupied_slots + $2")
					assert.Equal(t, 1, args[1])
					return pgconn.CommandTag("UPDATE 1"), nil
				}),
		)
		mockTx.EXPECT().Commit(ctx).Return(nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := repo.Transition(ctx, layoutID, coord, depot.SlotAvailable, depot.SlotOccupied, &custodyID)
		assert.NoError(t, err)
	})

	t.Run("release decrements the occupancy counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewSlotRepo(mockDB)

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		gomock.InOrder(
			mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
					assert.Contains(t, query, "UPDATE slot_states")
					assert.Equal(t, "available", args[4])
					assert.Equal(t, "occupied", args[6])
					return pgconn.CommandTag("UPDATE 1"), nil
				}),
			mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
					assert.Equal(t, -1, args[1])
					return pgconn.CommandTag("UPDATE 1"), nil
				}),
		)
		mockTx.EXPECT().Commit(ctx).Return(nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := repo.Transition(ctx, layoutID, coord, depot.SlotOccupied, depot.SlotAvailable, nil)
		assert.NoError(t, err)
	})

	t.Run("stale prior status is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewSlotRepo(mockDB)

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).Return(pgconn.CommandTag("UPDATE 0"), nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := repo.Transition(ctx, layoutID, coord, depot.SlotOccupied, depot.SlotAvailable, nil)
		assert.ErrorIs(t, err, repository.ErrSlotConflict)
	})

	t.Run("reserved to maintenance leaves counters alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewSlotRepo(mockDB)

		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).Return(pgconn.CommandTag("UPDATE 1"), nil)
		mockTx.EXPECT().Commit(ctx).Return(nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := repo.Transition(ctx, layoutID, coord, depot.SlotReserved, depot.SlotMaintenance, nil)
		assert.NoError(t, err)
	})
}

func TestSlotRepo_GetState(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewSlotRepo(mockDB)
	layoutID := uuid.New()

	mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(layoutID), gomock.Eq("A"), gomock.Eq(1), gomock.Eq(2)).
		DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			*dest.(*repository.SlotState) = repository.SlotState{LayoutID: layoutID, Corridor: "A", Rack: 1, Slot: 2, Status: "occupied"}
			return nil
		})

	state, err := repo.GetState(ctx, layoutID, depot.Coordinate{Corridor: "A", Rack: 1, Slot: 2})
	assert.NoError(t, err)
	assert.Equal(t, "occupied", state.Status)
}
