//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_custody
package custody

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/allseasons/tiredepot/internal/apperrors"
	"github.com/allseasons/tiredepot/internal/depot"
	"github.com/allseasons/tiredepot/internal/metrics"
	"github.com/allseasons/tiredepot/internal/repository"
)

const codeGenerationAttempts = 5

// Depot is the slice of the layout registry the custody lifecycle needs.
type Depot interface {
	Status(ctx context.Context, providerID string) (*depot.Layout, error)
	MarkSlot(ctx context.Context, providerID string, coord depot.Coordinate, newStatus depot.SlotStatus, custodyID *uuid.UUID) error
}

type Allocator interface {
	FindAvailable(layout *depot.Layout) (depot.Coordinate, error)
}

type Repository interface {
	Create(ctx context.Context, rec *repository.CustodyRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.CustodyRecord, error)
	GetStoredByCode(ctx context.Context, providerID, code string) (*repository.CustodyRecord, error)
	Update(ctx context.Context, rec *repository.CustodyRecord) error
	CodeExists(ctx context.Context, code string) (bool, error)
	ListByCustomer(ctx context.Context, customerID string, limit int, activeOnly bool) ([]*repository.CustodyRecord, error)
	ListExpired(ctx context.Context, providerID string, asOf time.Time) ([]*repository.CustodyRecord, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, entry *repository.CustodyHistoryEntry) error
	GetByCustodyID(ctx context.Context, custodyID uuid.UUID) ([]*repository.CustodyHistoryEntry, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, task *repository.OutboxTask) error
}

// LabelPayload is what gets encoded into the scannable artifact printed at
// intake.
type LabelPayload struct {
	Code       string    `json:"code"`
	CustomerID string    `json:"customer_id"`
	VehicleID  string    `json:"vehicle_id"`
	Location   string    `json:"location"`
	Date       time.Time `json:"date"`
}

type LabelRenderer interface {
	Render(payload LabelPayload) ([]byte, error)
}

type IntakeRequest struct {
	CustomerID string
	VehicleID  string
	ProviderID string
	TireSet    TireSet
	Fee        int
	Photos     []string
}

// Service runs the custody record lifecycle: intake, code lookup, release and
// damage marking. Intake for one provider is serialized so two concurrent
// requests cannot both claim the same slot; the conditional slot transition in
// the repository is the backstop for anything bypassing the lock.
type Service struct {
	depot       Depot
	allocator   Allocator
	repo        Repository
	historyRepo HistoryRepository
	outboxRepo  OutboxRepository
	renderer    LabelRenderer
	logger      *zap.Logger
	timeNow     func() time.Time

	mu         sync.Mutex
	providerMu map[string]*sync.Mutex
}

func NewService(
	dep Depot,
	allocator Allocator,
	repo Repository,
	historyRepo HistoryRepository,
	outboxRepo OutboxRepository,
	renderer LabelRenderer,
	logger *zap.Logger,
) *Service {
	return &Service{
		depot:       dep,
		allocator:   allocator,
		repo:        repo,
		historyRepo: historyRepo,
		outboxRepo:  outboxRepo,
		renderer:    renderer,
		logger:      logger,
		timeNow:     func() time.Time { return time.Now().UTC() },
		providerMu:  make(map[string]*sync.Mutex),
	}
}

func (s *Service) lockProvider(providerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.providerMu[providerID]
	if !ok {
		m = &sync.Mutex{}
		s.providerMu[providerID] = m
	}
	return m
}

func validateTireSet(ts TireSet) error {
	if !ts.Season.Valid() {
		return apperrors.Validationf("season must be %q or %q, got %q", SeasonSummer, SeasonWinter, ts.Season)
	}
	if ts.Brand == "" {
		return apperrors.Validationf("tire brand is required")
	}
	if ts.Size == "" {
		return apperrors.Validationf("tire size is required")
	}
	for i, d := range ts.TreadDepths {
		if d < 0 {
			return apperrors.Validationf("tread depth %d must not be negative, got %.1f", i+1, d)
		}
	}
	return nil
}

// Intake stores a tire set: it allocates the first free slot, claims it, and
// persists the custody record. If persisting fails after the slot was claimed,
// the claim is rolled back so no slot is left orphaned.
func (s *Service) Intake(ctx context.Context, req IntakeRequest) (*Record, error) {
	if req.CustomerID == "" || req.VehicleID == "" || req.ProviderID == "" {
		return nil, apperrors.Validationf("customer, vehicle and provider ids are required")
	}
	if err := validateTireSet(req.TireSet); err != nil {
		return nil, err
	}
	if req.Fee < 0 {
		return nil, apperrors.Validationf("fee must not be negative")
	}

	lock := s.lockProvider(req.ProviderID)
	lock.Lock()
	defer lock.Unlock()

	layout, err := s.depot.Status(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	coord, err := s.allocator.FindAvailable(layout)
	if err != nil {
		return nil, err
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	now := s.timeNow()
	id := uuid.New()
	location := coord.Location()

	label, err := s.renderer.Render(LabelPayload{
		Code:       code,
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
		Location:   location,
		Date:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render label for code %s: %w", code, err)
	}

	if err := s.depot.MarkSlot(ctx, req.ProviderID, coord, depot.SlotOccupied, &id); err != nil {
		return nil, err
	}

	rec := &repository.CustodyRecord{
		ID:             id,
		CustomerID:     req.CustomerID,
		VehicleID:      req.VehicleID,
		ProviderID:     req.ProviderID,
		Season:         string(req.TireSet.Season),
		Brand:          req.TireSet.Brand,
		Model:          req.TireSet.Model,
		Size:           req.TireSet.Size,
		Condition:      req.TireSet.Condition,
		TreadFL:        req.TireSet.TreadDepths[0],
		TreadFR:        req.TireSet.TreadDepths[1],
		TreadRL:        req.TireSet.TreadDepths[2],
		TreadRR:        req.TireSet.TreadDepths[3],
		ProductionYear: req.TireSet.ProductionYear,
		Notes:          req.TireSet.Notes,
		Corridor:       coord.Corridor,
		Rack:           coord.Rack,
		Slot:           coord.Slot,
		Location:       location,
		Code:           code,
		LabelPNG:       label,
		StorageDate:    now,
		ExpiryDate:     now.AddDate(0, 6, 0),
		Status:         string(StatusStored),
		Fee:            req.Fee,
		AmountPaid:     0,
		PaymentStatus:  string(PaymentPending),
		Photos:         req.Photos,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		// Compensate: the slot was already claimed, give it back before
		// surfacing the failure.
		if rbErr := s.depot.MarkSlot(ctx, req.ProviderID, coord, depot.SlotAvailable, nil); rbErr != nil {
			s.logger.Error("failed to roll back slot claim after intake persist failure",
				zap.String("provider_id", req.ProviderID),
				zap.String("location", location),
				zap.Error(rbErr))
		}
		metrics.OperationErrorsTotal.WithLabelValues("intake").Inc()
		return nil, fmt.Errorf("failed to persist custody record: %w", err)
	}

	s.appendHistory(ctx, id, StatusStored, now)
	s.enqueueEvent(ctx, "custody_intake", rec)
	metrics.IntakesTotal.Inc()

	return fromRepo(rec), nil
}

// LookupByCode resolves a scanned code to its custody record. Records of other
// providers and records no longer stored are not visible.
func (s *Service) LookupByCode(ctx context.Context, providerID, code string) (*Record, error) {
	if code == "" {
		return nil, apperrors.Validationf("code is required")
	}
	rec, err := s.repo.GetStoredByCode(ctx, providerID, code)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, apperrors.NotFoundf("no stored record with code %s", code)
		}
		return nil, fmt.Errorf("failed to look up code %s: %w", code, err)
	}
	return fromRepo(rec), nil
}

// Release hands the tire set back to the customer and frees its slot.
func (s *Service) Release(ctx context.Context, recordID uuid.UUID, providerID string) (*Record, error) {
	rec, err := s.finalize(ctx, recordID, providerID, StatusRetrieved, "custody_release")
	if err != nil {
		return nil, err
	}
	metrics.ReleasesTotal.Inc()
	return rec, nil
}

// MarkDamaged closes the record as damaged and frees its slot. Terminal, like
// release.
func (s *Service) MarkDamaged(ctx context.Context, recordID uuid.UUID, providerID string) (*Record, error) {
	rec, err := s.finalize(ctx, recordID, providerID, StatusDamaged, "custody_damaged")
	if err != nil {
		return nil, err
	}
	metrics.DamagedTotal.Inc()
	return rec, nil
}

func (s *Service) finalize(ctx context.Context, recordID uuid.UUID, providerID string, target Status, event string) (*Record, error) {
	repoRec, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, apperrors.NotFoundf("custody record %s not found", recordID)
		}
		return nil, fmt.Errorf("failed to load custody record %s: %w", recordID, err)
	}
	if repoRec.ProviderID != providerID {
		return nil, apperrors.NotFoundf("custody record %s not found", recordID)
	}
	if Status(repoRec.Status) != StatusStored {
		return nil, apperrors.Conflictf("custody record %s already released (status %s)", recordID, repoRec.Status)
	}

	coord := depot.Coordinate{Corridor: repoRec.Corridor, Rack: repoRec.Rack, Slot: repoRec.Slot}

	// Free the slot first; the conditional occupied->available transition
	// makes sure only one of two racing callers gets through.
	if err := s.depot.MarkSlot(ctx, providerID, coord, depot.SlotAvailable, nil); err != nil {
		return nil, err
	}

	now := s.timeNow()
	repoRec.Status = string(target)
	repoRec.LastAccessedAt = &now
	repoRec.UpdatedAt = now
	if err := s.repo.Update(ctx, repoRec); err != nil {
		// The slot is already free; re-claim it so record and occupancy
		// stay consistent, then report.
		if rbErr := s.depot.MarkSlot(ctx, providerID, coord, depot.SlotOccupied, &repoRec.ID); rbErr != nil {
			s.logger.Error("failed to re-claim slot after release persist failure",
				zap.String("provider_id", providerID),
				zap.String("location", repoRec.Location),
				zap.Error(rbErr))
		}
		metrics.OperationErrorsTotal.WithLabelValues("release").Inc()
		return nil, fmt.Errorf("failed to update custody record %s: %w", recordID, err)
	}

	s.appendHistory(ctx, repoRec.ID, target, now)
	s.enqueueEvent(ctx, event, repoRec)

	return fromRepo(repoRec), nil
}

// History returns the status transitions of one custody record.
func (s *Service) History(ctx context.Context, recordID uuid.UUID) ([]HistoryEntry, error) {
	entries, err := s.historyRepo.GetByCustodyID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for record %s: %w", recordID, err)
	}
	out := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntry{Status: Status(e.Status), ChangedAt: e.ChangedAt}
	}
	return out, nil
}

// ListByCustomer returns a customer's custody records, newest first.
func (s *Service) ListByCustomer(ctx context.Context, customerID string, limit int, activeOnly bool) ([]Record, error) {
	recs, err := s.repo.ListByCustomer(ctx, customerID, limit, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for customer %s: %w", customerID, err)
	}
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = *fromRepo(r)
	}
	return out, nil
}

// ExpiredRecords lists stored records whose expiry date has passed. Expiry is
// informational: nothing transitions the status or frees the slot.
func (s *Service) ExpiredRecords(ctx context.Context, providerID string) ([]Record, error) {
	recs, err := s.repo.ListExpired(ctx, providerID, s.timeNow())
	if err != nil {
		return nil, fmt.Errorf("failed to list expired records for provider %s: %w", providerID, err)
	}
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = *fromRepo(r)
	}
	return out, nil
}

func (s *Service) uniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		code := generateCode(s.timeNow())
		exists, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique code after %d attempts", codeGenerationAttempts)
}

func (s *Service) appendHistory(ctx context.Context, custodyID uuid.UUID, status Status, at time.Time) {
	err := s.historyRepo.Create(ctx, &repository.CustodyHistoryEntry{
		CustodyID: custodyID,
		Status:    string(status),
		ChangedAt: at,
	})
	if err != nil {
		s.logger.Warn("failed to append custody history entry",
			zap.String("custody_id", custodyID.String()),
			zap.String("status", string(status)),
			zap.Error(err))
	}
}

func (s *Service) enqueueEvent(ctx context.Context, event string, rec *repository.CustodyRecord) {
	payload, err := json.Marshal(repository.DepotEventPayload{
		Event:      event,
		CustodyID:  rec.ID.String(),
		ProviderID: rec.ProviderID,
		CustomerID: rec.CustomerID,
		Location:   rec.Location,
		OccurredAt: s.timeNow(),
	})
	if err != nil {
		s.logger.Warn("failed to marshal depot event", zap.String("event", event), zap.Error(err))
		return
	}
	task := &repository.OutboxTask{
		Topic:   "depot_events",
		Payload: payload,
	}
	if err := s.outboxRepo.Create(ctx, task); err != nil {
		s.logger.Warn("failed to enqueue depot event",
			zap.String("event", event),
			zap.String("custody_id", rec.ID.String()),
			zap.Error(err))
	}
}
