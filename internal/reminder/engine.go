//go:generate mockgen -source ./engine.go -destination=./mocks/engine.go -package=mock_reminder
package reminder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/allseasons/tiredepot/internal/apperrors"
	"github.com/allseasons/tiredepot/internal/custody"
	"github.com/allseasons/tiredepot/internal/metrics"
	"github.com/allseasons/tiredepot/internal/repository"
)

const defaultSendTimeout = 10 * time.Second

var defaultTemplates = map[custody.Season]string{
	custody.SeasonSummer: "Hi {customer}, summer is coming: your summer tires ({code}) are ready for pickup at slot {location}. Stored until {expiry}.",
	custody.SeasonWinter: "Hi {customer}, time to switch: your winter tires ({code}) are ready for pickup at slot {location}. Stored until {expiry}.",
}

// Messenger is the external delivery provider. It reports the provider-side
// message id and whether delivery (not just acceptance) was confirmed.
type Messenger interface {
	Send(ctx context.Context, phone, message string) (externalID string, delivered bool, err error)
}

// CustomerDirectory resolves a customer reference to a phone number. Identity
// data lives outside the core.
type CustomerDirectory interface {
	Phone(ctx context.Context, customerID string) (string, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, providerID string) (*repository.ReminderSettings, error)
	Upsert(ctx context.Context, settings *repository.ReminderSettings) error
	List(ctx context.Context) ([]*repository.ReminderSettings, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *repository.ReminderDelivery) error
	ListByProvider(ctx context.Context, providerID string) ([]*repository.ReminderDelivery, error)
}

type StatsRepository interface {
	Get(ctx context.Context, providerID string) (*repository.ReminderStats, error)
	Upsert(ctx context.Context, stats *repository.ReminderStats) error
}

type CustodyRepository interface {
	ListUnreminded(ctx context.Context, providerID, season string) ([]*repository.CustodyRecord, error)
	MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Engine runs the seasonal reminder sweep. Each stored set gets exactly one
// attempt per season: the record is marked reminded whether or not delivery
// succeeded, so a failed number is not retried until the next campaign.
type Engine struct {
	settingsRepo SettingsRepository
	deliveryRepo DeliveryRepository
	statsRepo    StatsRepository
	custodyRepo  CustodyRepository
	messenger    Messenger
	directory    CustomerDirectory
	logger       *zap.Logger
	sendTimeout  time.Duration
	timeNow      func() time.Time
}

func NewEngine(
	settingsRepo SettingsRepository,
	deliveryRepo DeliveryRepository,
	statsRepo StatsRepository,
	custodyRepo CustodyRepository,
	messenger Messenger,
	directory CustomerDirectory,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		settingsRepo: settingsRepo,
		deliveryRepo: deliveryRepo,
		statsRepo:    statsRepo,
		custodyRepo:  custodyRepo,
		messenger:    messenger,
		directory:    directory,
		logger:       logger,
		sendTimeout:  defaultSendTimeout,
		timeNow:      func() time.Time { return time.Now().UTC() },
	}
}

// RunSeasonalSweep contacts every customer with a stored, unreminded set of
// the given season. A single recipient failing never aborts the sweep; only
// failing to load settings or records does.
func (e *Engine) RunSeasonalSweep(ctx context.Context, providerID string, season custody.Season) (SweepResult, error) {
	if !season.Valid() {
		return SweepResult{}, apperrors.Validationf("unknown season %q", season)
	}

	repoSettings, err := e.settingsRepo.Get(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			// Campaign never configured: nothing to do.
			return SweepResult{}, nil
		}
		return SweepResult{}, fmt.Errorf("failed to load reminder settings for provider %s: %w", providerID, err)
	}

	settings := settingsFromRepo(repoSettings).forSeason(season)
	if !settings.Enabled {
		return SweepResult{}, nil
	}

	records, err := e.custodyRepo.ListUnreminded(ctx, providerID, string(season))
	if err != nil {
		return SweepResult{}, fmt.Errorf("failed to load custody records for provider %s: %w", providerID, err)
	}

	template := settings.Template
	if template == "" {
		template = defaultTemplates[season]
	}

	var result SweepResult
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			// Cancellation is honored between recipients only; whoever was
			// already attempted stays marked.
			return result, err
		}
		e.remindOne(ctx, rec, season, template, &result)
	}

	// Stats derive from deliveries already written, so the recompute also
	// survives a cancellation that arrived during the last send.
	if err := e.recomputeStats(context.WithoutCancel(ctx), providerID); err != nil {
		e.logger.Warn("failed to recompute reminder stats",
			zap.String("provider_id", providerID),
			zap.Error(err))
	}

	return result, nil
}

func (e *Engine) remindOne(ctx context.Context, rec *repository.CustodyRecord, season custody.Season, template string, result *SweepResult) {
	now := e.timeNow()
	message := renderMessage(template, rec)
	outcome := OutcomeFailed
	externalID := ""

	phone, err := e.directory.Phone(ctx, rec.CustomerID)
	if err == nil {
		sendCtx, cancel := context.WithTimeout(ctx, e.sendTimeout)
		var delivered bool
		externalID, delivered, err = e.messenger.Send(sendCtx, phone, message)
		cancel()
		if err == nil {
			if delivered {
				outcome = OutcomeDelivered
			} else {
				outcome = OutcomeSent
			}
		}
	}
	if err != nil {
		e.logger.Warn("reminder delivery failed",
			zap.String("custody_id", rec.ID.String()),
			zap.String("customer_id", rec.CustomerID),
			zap.Error(apperrors.Deliveryf("%v", err)))
	}

	result.Sent++
	switch outcome {
	case OutcomeDelivered:
		result.Delivered++
	case OutcomeFailed:
		result.Failed++
	}
	metrics.RemindersTotal.WithLabelValues(outcome).Inc()

	// The customer has been attempted at this point. The bookkeeping writes
	// run detached from the sweep context so a cancellation arriving mid-send
	// cannot leave an attempted recipient unmarked and up for a second
	// contact next sweep.
	bookCtx := context.WithoutCancel(ctx)

	if err := e.deliveryRepo.Create(bookCtx, &repository.ReminderDelivery{
		CustodyID:  rec.ID,
		CustomerID: rec.CustomerID,
		ProviderID: rec.ProviderID,
		Season:     string(season),
		SentAt:     now,
		Message:    message,
		Outcome:    outcome,
		ExternalID: externalID,
	}); err != nil {
		e.logger.Error("failed to record reminder delivery",
			zap.String("custody_id", rec.ID.String()),
			zap.Error(err))
	}

	// One attempt per season: marked regardless of outcome.
	if err := e.custodyRepo.MarkReminded(bookCtx, rec.ID, now); err != nil {
		e.logger.Error("failed to mark custody record reminded",
			zap.String("custody_id", rec.ID.String()),
			zap.Error(err))
	}
}

// recomputeStats derives the provider-level counters from the full delivery
// history rather than incrementing them in place.
func (e *Engine) recomputeStats(ctx context.Context, providerID string) error {
	deliveries, err := e.deliveryRepo.ListByProvider(ctx, providerID)
	if err != nil {
		return fmt.Errorf("failed to list deliveries: %w", err)
	}

	stats := &repository.ReminderStats{
		ProviderID: providerID,
		UpdatedAt:  e.timeNow(),
	}
	for _, d := range deliveries {
		stats.TotalSent++
		switch d.Outcome {
		case OutcomeDelivered:
			stats.TotalDelivered++
		case OutcomeFailed:
			stats.TotalFailed++
		}
		if stats.LastSentAt == nil || d.SentAt.After(*stats.LastSentAt) {
			sentAt := d.SentAt
			stats.LastSentAt = &sentAt
		}
	}

	if err := e.statsRepo.Upsert(ctx, stats); err != nil {
		return fmt.Errorf("failed to upsert stats: %w", err)
	}
	return nil
}

// UpdateSettings validates and saves a provider's campaign configuration.
func (e *Engine) UpdateSettings(ctx context.Context, providerID string, settings Settings) error {
	if providerID == "" {
		return apperrors.Validationf("provider id is required")
	}
	for _, w := range []struct {
		season custody.Season
		s      SeasonSettings
	}{
		{custody.SeasonSummer, settings.Summer},
		{custody.SeasonWinter, settings.Winter},
	} {
		for _, bound := range []string{w.s.WindowStart, w.s.WindowEnd} {
			if bound == "" {
				continue
			}
			if _, err := time.Parse("01-02", bound); err != nil {
				return apperrors.Validationf("%s window bound %q is not a valid MM-DD date", w.season, bound)
			}
		}
	}

	if err := e.settingsRepo.Upsert(ctx, settingsToRepo(providerID, settings, e.timeNow())); err != nil {
		return fmt.Errorf("failed to save reminder settings for provider %s: %w", providerID, err)
	}
	return nil
}

// Settings returns a provider's campaign configuration.
func (e *Engine) Settings(ctx context.Context, providerID string) (Settings, error) {
	repoSettings, err := e.settingsRepo.Get(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return Settings{}, apperrors.NotFoundf("no reminder settings for provider %s", providerID)
		}
		return Settings{}, fmt.Errorf("failed to load reminder settings for provider %s: %w", providerID, err)
	}
	return settingsFromRepo(repoSettings), nil
}

// ProviderStats returns the derived delivery counters.
func (e *Engine) ProviderStats(ctx context.Context, providerID string) (Stats, error) {
	repoStats, err := e.statsRepo.Get(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return Stats{}, nil
		}
		return Stats{}, fmt.Errorf("failed to load reminder stats for provider %s: %w", providerID, err)
	}
	return Stats{
		TotalSent:      repoStats.TotalSent,
		TotalDelivered: repoStats.TotalDelivered,
		TotalFailed:    repoStats.TotalFailed,
		LastSentAt:     repoStats.LastSentAt,
	}, nil
}

// RunDueSweeps runs the sweep for every provider whose season window contains
// today. Wired to the scheduler in cmd.
func (e *Engine) RunDueSweeps(ctx context.Context) error {
	all, err := e.settingsRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reminder settings: %w", err)
	}

	today := e.timeNow()
	for _, repoSettings := range all {
		settings := settingsFromRepo(repoSettings)
		for _, season := range []custody.Season{custody.SeasonSummer, custody.SeasonWinter} {
			s := settings.forSeason(season)
			if !s.Enabled || !windowContains(s.WindowStart, s.WindowEnd, today) {
				continue
			}
			result, err := e.RunSeasonalSweep(ctx, repoSettings.ProviderID, season)
			if err != nil {
				e.logger.Error("scheduled sweep failed",
					zap.String("provider_id", repoSettings.ProviderID),
					zap.String("season", string(season)),
					zap.Error(err))
				continue
			}
			if result.Sent > 0 {
				e.logger.Info("scheduled sweep finished",
					zap.String("provider_id", repoSettings.ProviderID),
					zap.String("season", string(season)),
					zap.Int("sent", result.Sent),
					zap.Int("delivered", result.Delivered),
					zap.Int("failed", result.Failed))
			}
		}
	}
	return nil
}

// windowContains checks whether the month-day of t falls inside [start, end].
// A window may wrap the year end (e.g. 10-01 .. 01-31).
func windowContains(start, end string, t time.Time) bool {
	if start == "" || end == "" {
		return false
	}
	day := t.Format("01-02")
	if start <= end {
		return day >= start && day <= end
	}
	return day >= start || day <= end
}

func renderMessage(template string, rec *repository.CustodyRecord) string {
	return strings.NewReplacer(
		"{customer}", rec.CustomerID,
		"{season}", rec.Season,
		"{location}", rec.Location,
		"{expiry}", rec.ExpiryDate.Format("2006-01-02"),
		"{code}", rec.Code,
	).Replace(template)
}
