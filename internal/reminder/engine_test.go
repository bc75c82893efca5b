package reminder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/allseasons/tiredepot/internal/apperrors"
	"github.com/allseasons/tiredepot/internal/custody"
	"github.com/allseasons/tiredepot/internal/reminder"
	mock_reminder "github.com/allseasons/tiredepot/internal/reminder/mocks"
	"github.com/allseasons/tiredepot/internal/repository"
)

type engineMocks struct {
	settings  *mock_reminder.MockSettingsRepository
	delivery  *mock_reminder.MockDeliveryRepository
	stats     *mock_reminder.MockStatsRepository
	custody   *mock_reminder.MockCustodyRepository
	messenger *mock_reminder.MockMessenger
	directory *mock_reminder.MockCustomerDirectory
}

func newEngine(t *testing.T) (*reminder.Engine, engineMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := engineMocks{
		settings:  mock_reminder.NewMockSettingsRepository(ctrl),
		delivery:  mock_reminder.NewMockDeliveryRepository(ctrl),
		stats:     mock_reminder.NewMockStatsRepository(ctrl),
		custody:   mock_reminder.NewMockCustodyRepository(ctrl),
		messenger: mock_reminder.NewMockMessenger(ctrl),
		directory: mock_reminder.NewMockCustomerDirectory(ctrl),
	}
	engine := reminder.NewEngine(m.settings, m.delivery, m.stats, m.custody, m.messenger, m.directory, zap.NewNop())
	return engine, m
}

func winterEnabled() *repository.ReminderSettings {
	return &repository.ReminderSettings{
		ProviderID:        "provider-1",
		WinterEnabled:     true,
		WinterWindowStart: "10-01",
		WinterWindowEnd:   "11-30",
	}
}

func winterRecord(customerID string) *repository.CustodyRecord {
	return &repository.CustodyRecord{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProviderID: "provider-1",
		Season:     "winter",
		Location:   "A-R1-S1",
		Code:       "TD-X-YYYYYY",
		ExpiryDate: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		Status:     "stored",
	}
}

func TestEngine_RunSeasonalSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid season", func(t *testing.T) {
		engine, _ := newEngine(t)
		_, err := engine.RunSeasonalSweep(ctx, "provider-1", "spring")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("no settings configured is a no-op", func(t *testing.T) {
		engine, m := newEngine(t)
		m.settings.EXPECT().Get(ctx, "provider-1").Return(nil, repository.ErrObjectNotFound)

		result, err := engine.RunSeasonalSweep(ctx, "provider-1", custody.SeasonWinter)
		assert.NoError(t, err)
		assert.Equal(t, reminder.SweepResult{}, result)
	})

	t.Run("disabled season is a no-op", func(t *testing.T) {
		engine, m := newEngine(t)
		settings := winterEnabled()
		settings.WinterEnabled = false
		m.settings.EXPECT().Get(ctx, "provider-1").Return(settings, nil)

		result, err := engine.RunSeasonalSweep(ctx, "provider-1", custody.SeasonWinter)
		assert.NoError(t, err)
		assert.Equal(t, reminder.SweepResult{}, result)
	})

	t.Run("one failure never aborts the sweep", func(t *testing.T) {
		engine, m := newEngine(t)
		good := winterRecord("cust-good")
		bad := winterRecord("cust-unknown")

		m.settings.EXPECT().Get(ctx, "provider-1").Return(winterEnabled(), nil)
		m.custody.EXPECT().ListUnreminded(ctx, "provider-1", "winter").Return([]*repository.CustodyRecord{good, bad}, nil)

		m.directory.EXPECT().Phone(ctx, "cust-good").Return("+4791000001", nil)
		m.messenger.EXPECT().Send(gomock.Any(), "+4791000001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, message string) (string, bool, error) {
				// Default winter template mentions the pickup code.
				assert.Contains(t, message, good.Code)
				return "ext-1", true, nil
			})
		m.directory.EXPECT().Phone(ctx, "cust-unknown").Return("", apperrors.NotFoundf("no phone"))

		outcomes := map[string]string{}
		m.delivery.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d *repository.ReminderDelivery) error {
				outcomes[d.CustomerID] = d.Outcome
				return nil
			}).Times(2)

		// Both records get their single attempt marked, failed or not.
		m.custody.EXPECT().MarkReminded(gomock.Any(), good.ID, gomock.Any()).Return(nil)
		m.custody.EXPECT().MarkReminded(gomock.Any(), bad.ID, gomock.Any()).Return(nil)

		sent := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
		m.delivery.EXPECT().ListByProvider(gomock.Any(), "provider-1").Return([]*repository.ReminderDelivery{
			{ProviderID: "provider-1", Outcome: reminder.OutcomeDelivered, SentAt: sent},
			{ProviderID: "provider-1", Outcome: reminder.OutcomeFailed, SentAt: sent.Add(time.Second)},
		}, nil)
		m.stats.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *repository.ReminderStats) error {
				assert.Equal(t, 2, s.TotalSent)
				assert.Equal(t, 1, s.TotalDelivered)
				assert.Equal(t, 1, s.TotalFailed)
				require.NotNil(t, s.LastSentAt)
				assert.Equal(t, sent.Add(time.Second), *s.LastSentAt)
				return nil
			})

		result, err := engine.RunSeasonalSweep(ctx, "provider-1", custody.SeasonWinter)
		require.NoError(t, err)
		assert.Equal(t, reminder.SweepResult{Sent: 2, Delivered: 1, Failed: 1}, result)
		assert.Equal(t, reminder.OutcomeDelivered, outcomes["cust-good"])
		assert.Equal(t, reminder.OutcomeFailed, outcomes["cust-unknown"])
	})

	t.Run("messenger without receipts counts as sent", func(t *testing.T) {
		engine, m := newEngine(t)
		rec := winterRecord("cust-1")

		m.settings.EXPECT().Get(ctx, "provider-1").Return(winterEnabled(), nil)
		m.custody.EXPECT().ListUnreminded(ctx, "provider-1", "winter").Return([]*repository.CustodyRecord{rec}, nil)
		m.directory.EXPECT().Phone(ctx, "cust-1").Return("+4791000001", nil)
		m.messenger.EXPECT().Send(gomock.Any(), "+4791000001", gomock.Any()).Return("ext-1", false, nil)
		m.delivery.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d *repository.ReminderDelivery) error {
				assert.Equal(t, reminder.OutcomeSent, d.Outcome)
				assert.Equal(t, "ext-1", d.ExternalID)
				return nil
			})
		m.custody.EXPECT().MarkReminded(gomock.Any(), rec.ID, gomock.Any()).Return(nil)
		m.delivery.EXPECT().ListByProvider(gomock.Any(), "provider-1").Return(nil, nil)
		m.stats.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		result, err := engine.RunSeasonalSweep(ctx, "provider-1", custody.SeasonWinter)
		require.NoError(t, err)
		assert.Equal(t, reminder.SweepResult{Sent: 1, Delivered: 0, Failed: 0}, result)
	})

	t.Run("cancellation between recipients keeps the partial result", func(t *testing.T) {
		engine, m := newEngine(t)
		first := winterRecord("cust-1")
		second := winterRecord("cust-2")

		sweepCtx, cancel := context.WithCancel(context.Background())

		m.settings.EXPECT().Get(sweepCtx, "provider-1").Return(winterEnabled(), nil)
		m.custody.EXPECT().ListUnreminded(sweepCtx, "provider-1", "winter").Return([]*repository.CustodyRecord{first, second}, nil)
		m.directory.EXPECT().Phone(gomock.Any(), "cust-1").Return("+4791000001", nil)
		m.messenger.EXPECT().Send(gomock.Any(), "+4791000001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string) (string, bool, error) {
				cancel()
				return "ext-1", true, nil
			})
		m.delivery.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.custody.EXPECT().MarkReminded(gomock.Any(), first.ID, gomock.Any()).Return(nil)

		result, err := engine.RunSeasonalSweep(sweepCtx, "provider-1", custody.SeasonWinter)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, reminder.SweepResult{Sent: 1, Delivered: 1, Failed: 0}, result)
	})

	t.Run("cancellation mid-send never loses the attempt bookkeeping", func(t *testing.T) {
		engine, m := newEngine(t)
		first := winterRecord("cust-1")
		second := winterRecord("cust-2")

		sweepCtx, cancel := context.WithCancel(context.Background())

		m.settings.EXPECT().Get(sweepCtx, "provider-1").Return(winterEnabled(), nil)
		m.custody.EXPECT().ListUnreminded(sweepCtx, "provider-1", "winter").Return([]*repository.CustodyRecord{first, second}, nil)
		m.directory.EXPECT().Phone(gomock.Any(), "cust-1").Return("+4791000001", nil)
		m.messenger.EXPECT().Send(gomock.Any(), "+4791000001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string) (string, bool, error) {
				// The sweep is cancelled while the message is in flight.
				cancel()
				return "ext-1", true, nil
			})

		// The fakes refuse cancelled contexts the way a live connection
		// would, so the attempted recipient is only marked if the writes run
		// detached from the sweep context.
		deliveryWritten := false
		m.delivery.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(writeCtx context.Context, d *repository.ReminderDelivery) error {
				if err := writeCtx.Err(); err != nil {
					return err
				}
				assert.Equal(t, reminder.OutcomeDelivered, d.Outcome)
				deliveryWritten = true
				return nil
			})
		marked := false
		m.custody.EXPECT().MarkReminded(gomock.Any(), first.ID, gomock.Any()).DoAndReturn(
			func(writeCtx context.Context, _ uuid.UUID, _ time.Time) error {
				if err := writeCtx.Err(); err != nil {
					return err
				}
				marked = true
				return nil
			})

		// No Phone or Send expectation for cust-2: the second recipient is
		// never contacted once the sweep context is cancelled.
		result, err := engine.RunSeasonalSweep(sweepCtx, "provider-1", custody.SeasonWinter)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, reminder.SweepResult{Sent: 1, Delivered: 1, Failed: 0}, result)
		assert.True(t, deliveryWritten, "delivery record must be written despite cancellation")
		assert.True(t, marked, "recipient already sent to must stay marked reminded")
	})

	t.Run("each send carries its own timeout", func(t *testing.T) {
		engine, m := newEngine(t)
		rec := winterRecord("cust-1")

		m.settings.EXPECT().Get(ctx, "provider-1").Return(winterEnabled(), nil)
		m.custody.EXPECT().ListUnreminded(ctx, "provider-1", "winter").Return([]*repository.CustodyRecord{rec}, nil)
		m.directory.EXPECT().Phone(ctx, "cust-1").Return("+4791000001", nil)
		m.messenger.EXPECT().Send(gomock.Any(), "+4791000001", gomock.Any()).DoAndReturn(
			func(sendCtx context.Context, _, _ string) (string, bool, error) {
				deadline, ok := sendCtx.Deadline()
				require.True(t, ok, "send context must carry a deadline")
				remaining := time.Until(deadline)
				assert.LessOrEqual(t, remaining, 10*time.Second)
				assert.Greater(t, remaining, 5*time.Second)
				return "ext-1", true, nil
			})
		m.delivery.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.custody.EXPECT().MarkReminded(gomock.Any(), rec.ID, gomock.Any()).Return(nil)
		m.delivery.EXPECT().ListByProvider(gomock.Any(), "provider-1").Return(nil, nil)
		m.stats.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		result, err := engine.RunSeasonalSweep(ctx, "provider-1", custody.SeasonWinter)
		require.NoError(t, err)
		assert.Equal(t, reminder.SweepResult{Sent: 1, Delivered: 1, Failed: 0}, result)
	})
}

func TestEngine_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects malformed window bounds", func(t *testing.T) {
		engine, _ := newEngine(t)

		err := engine.UpdateSettings(ctx, "provider-1", reminder.Settings{
			Winter: reminder.SeasonSettings{Enabled: true, WindowStart: "13-40", WindowEnd: "11-30"},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects empty provider", func(t *testing.T) {
		engine, _ := newEngine(t)
		err := engine.UpdateSettings(ctx, "", reminder.Settings{})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("persists valid settings", func(t *testing.T) {
		engine, m := newEngine(t)

		m.settings.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s *repository.ReminderSettings) error {
				assert.Equal(t, "provider-1", s.ProviderID)
				assert.True(t, s.WinterEnabled)
				assert.Equal(t, "10-01", s.WinterWindowStart)
				assert.Equal(t, "11-30", s.WinterWindowEnd)
				return nil
			})

		err := engine.UpdateSettings(ctx, "provider-1", reminder.Settings{
			Winter: reminder.SeasonSettings{Enabled: true, WindowStart: "10-01", WindowEnd: "11-30"},
		})
		assert.NoError(t, err)
	})
}

func TestEngine_ProviderStats(t *testing.T) {
	ctx := context.Background()

	t.Run("no stats yet", func(t *testing.T) {
		engine, m := newEngine(t)
		m.stats.EXPECT().Get(ctx, "provider-1").Return(nil, repository.ErrObjectNotFound)

		stats, err := engine.ProviderStats(ctx, "provider-1")
		assert.NoError(t, err)
		assert.Equal(t, reminder.Stats{}, stats)
	})

	t.Run("existing stats", func(t *testing.T) {
		engine, m := newEngine(t)
		last := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
		m.stats.EXPECT().Get(ctx, "provider-1").Return(&repository.ReminderStats{
			ProviderID:     "provider-1",
			TotalSent:      10,
			TotalDelivered: 7,
			TotalFailed:    3,
			LastSentAt:     &last,
		}, nil)

		stats, err := engine.ProviderStats(ctx, "provider-1")
		require.NoError(t, err)
		assert.Equal(t, 10, stats.TotalSent)
		assert.Equal(t, 7, stats.TotalDelivered)
		assert.Equal(t, 3, stats.TotalFailed)
		assert.Equal(t, &last, stats.LastSentAt)
	})
}

func TestEngine_RunDueSweeps(t *testing.T) {
	ctx := context.Background()

	t.Run("skips providers outside their window", func(t *testing.T) {
		engine, m := newEngine(t)
		settings := winterEnabled()
		settings.WinterWindowStart = "02-01"
		settings.WinterWindowEnd = "02-02"
		m.settings.EXPECT().List(ctx).Return([]*repository.ReminderSettings{settings}, nil)

		assert.NoError(t, engine.RunDueSweeps(ctx))
	})

	t.Run("runs the sweep for a due provider", func(t *testing.T) {
		engine, m := newEngine(t)
		settings := winterEnabled()
		// Window spanning the whole year so the test is date independent.
		settings.WinterWindowStart = "01-01"
		settings.WinterWindowEnd = "12-31"

		m.settings.EXPECT().List(ctx).Return([]*repository.ReminderSettings{settings}, nil)
		m.settings.EXPECT().Get(ctx, "provider-1").Return(settings, nil)
		m.custody.EXPECT().ListUnreminded(ctx, "provider-1", "winter").Return(nil, nil)
		m.delivery.EXPECT().ListByProvider(gomock.Any(), "provider-1").Return(nil, nil)
		m.stats.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, engine.RunDueSweeps(ctx))
	})

	t.Run("settings listing failure surfaces", func(t *testing.T) {
		engine, m := newEngine(t)
		listErr := errors.New("database error")
		m.settings.EXPECT().List(ctx).Return(nil, listErr)

		assert.ErrorIs(t, engine.RunDueSweeps(ctx), listErr)
	})
}
