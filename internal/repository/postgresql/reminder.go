package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/allseasons/tiredepot/internal/db"
	"github.com/allseasons/tiredepot/internal/repository"
)

type ReminderSettingsRepo struct {
	db db.DB
}

func NewReminderSettingsRepo(db db.DB) *ReminderSettingsRepo {
	return &ReminderSettingsRepo{db: db}
}

func (r *ReminderSettingsRepo) Get(ctx context.Context, providerID string) (*repository.ReminderSettings, error) {
	var settings repository.ReminderSettings
	err := r.db.Get(ctx, &settings, "SELECT * FROM reminder_settings WHERE provider_id = $1", providerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *ReminderSettingsRepo) Upsert(ctx context.Context, settings *repository.ReminderSettings) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO reminder_settings (
            provider_id,
            summer_enabled, summer_window_start, summer_window_end, summer_template,
            winter_enabled, winter_window_start, winter_window_end, winter_template,
            updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (provider_id) DO UPDATE SET
            summer_enabled = EXCLUDED.summer_enabled,
            summer_window_start = EXCLUDED.summer_window_start,
            summer_window_end = EXCLUDED.summer_window_end,
            summer_template = EXCLUDED.summer_template,
            winter_enabled = EXCLUDED.winter_enabled,
            winter_window_start = EXCLUDED.winter_window_start,
            winter_window_end = EXCLUDED.winter_window_end,
            winter_template = EXCLUDED.winter_template,
            updated_at = EXCLUDED.updated_at
    `, settings.ProviderID,
		settings.SummerEnabled, settings.SummerWindowStart, settings.SummerWindowEnd, settings.SummerTemplate,
		settings.WinterEnabled, settings.WinterWindowStart, settings.WinterWindowEnd, settings.WinterTemplate,
		settings.UpdatedAt)
	return err
}

func (r *ReminderSettingsRepo) List(ctx context.Context) ([]*repository.ReminderSettings, error) {
	var settings []*repository.ReminderSettings
	err := r.db.Select(ctx, &settings, "SELECT * FROM reminder_settings ORDER BY provider_id")
	return settings, err
}

type ReminderDeliveryRepo struct {
	db db.DB
}

func NewReminderDeliveryRepo(db db.DB) *ReminderDeliveryRepo {
	return &ReminderDeliveryRepo{db: db}
}

func (r *ReminderDeliveryRepo) Create(ctx context.Context, delivery *repository.ReminderDelivery) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO reminder_deliveries (
            custody_id, customer_id, provider_id, season, sent_at, message, outcome, external_id
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, delivery.CustodyID, delivery.CustomerID, delivery.ProviderID, delivery.Season,
		delivery.SentAt, delivery.Message, delivery.Outcome, delivery.ExternalID)
	return err
}

func (r *ReminderDeliveryRepo) ListByProvider(ctx context.Context, providerID string) ([]*repository.ReminderDelivery, error) {
	var deliveries []*repository.ReminderDelivery
	err := r.db.Select(ctx, &deliveries, `
        SELECT * FROM reminder_deliveries
        WHERE provider_id = $1
        ORDER BY sent_at ASC, id ASC
    `, providerID)
	return deliveries, err
}

type ReminderStatsRepo struct {
	db db.DB
}

func NewReminderStatsRepo(db db.DB) *ReminderStatsRepo {
	return &ReminderStatsRepo{db: db}
}

func (r *ReminderStatsRepo) Get(ctx context.Context, providerID string) (*repository.ReminderStats, error) {
	var stats repository.ReminderStats
	err := r.db.Get(ctx, &stats, "SELECT * FROM reminder_stats WHERE provider_id = $1", providerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &stats, nil
}

func (r *ReminderStatsRepo) Upsert(ctx context.Context, stats *repository.ReminderStats) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO reminder_stats (
            provider_id, total_sent, total_delivered, total_failed, last_sent_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (provider_id) DO UPDATE SET
            total_sent = EXCLUDED.total_sent,
            total_delivered = EXCLUDED.total_delivered,
            total_failed = EXCLUDED.total_failed,
            last_sent_at = EXCLUDED.last_sent_at,
            updated_at = EXCLUDED.updated_at
    `, stats.ProviderID, stats.TotalSent, stats.TotalDelivered, stats.TotalFailed, stats.LastSentAt, stats.UpdatedAt)
	return err
}
