package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/allseasons/tiredepot/internal/db"
	"github.com/allseasons/tiredepot/internal/repository"
)

type CustodyRepo struct {
	db db.DB
}

func NewCustodyRepo(db db.DB) *CustodyRepo {
	return &CustodyRepo{db: db}
}

func (r *CustodyRepo) Create(ctx context.Context, rec *repository.CustodyRecord) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO custody_records (
            id, customer_id, vehicle_id, provider_id,
            season, brand, model, size, condition,
            tread_fl, tread_fr, tread_rl, tread_rr, production_year, notes,
            corridor, rack, slot, location, code, label_png,
            storage_date, expiry_date, last_accessed_at, status,
            fee, amount_paid, payment_status, photos,
            reminder_sent, reminder_sent_at, created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6, $7, $8, $9,
            $10, $11, $12, $13, $14, $15,
            $16, $17, $18, $19, $20, $21,
            $22, $23, $24, $25,
            $26, $27, $28, $29,
            $30, $31, $32, $33
        )
    `, rec.ID, rec.CustomerID, rec.VehicleID, rec.ProviderID,
		rec.Season, rec.Brand, rec.Model, rec.Size, rec.Condition,
		rec.TreadFL, rec.TreadFR, rec.TreadRL, rec.TreadRR, rec.ProductionYear, rec.Notes,
		rec.Corridor, rec.Rack, rec.Slot, rec.Location, rec.Code, rec.LabelPNG,
		rec.StorageDate, rec.ExpiryDate, rec.LastAccessedAt, rec.Status,
		rec.Fee, rec.AmountPaid, rec.PaymentStatus, rec.Photos,
		rec.ReminderSent, rec.ReminderSentAt, rec.CreatedAt, rec.UpdatedAt)
	return err
}

func (r *CustodyRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.CustodyRecord, error) {
	var rec repository.CustodyRecord
	err := r.db.Get(ctx, &rec, "SELECT * FROM custody_records WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *CustodyRepo) GetStoredByCode(ctx context.Context, providerID, code string) (*repository.CustodyRecord, error) {
	var rec repository.CustodyRecord
	err := r.db.Get(ctx, &rec, `
        SELECT * FROM custody_records
        WHERE provider_id = $1 AND code = $2 AND status = 'stored'
    `, providerID, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *CustodyRepo) Update(ctx context.Context, rec *repository.CustodyRecord) error {
	_, err := r.db.Exec(ctx, `
        UPDATE custody_records
        SET
            status = $1,
            last_accessed_at = $2,
            amount_paid = $3,
            payment_status = $4,
            notes = $5,
            updated_at = $6
        WHERE id = $7
    `, rec.Status, rec.LastAccessedAt, rec.AmountPaid, rec.PaymentStatus, rec.Notes, rec.UpdatedAt, rec.ID)
	return err
}

func (r *CustodyRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.ExecQueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM custody_records WHERE code = $1)", code).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CustodyRepo) ListByCustomer(ctx context.Context, customerID string, limit int, activeOnly bool) ([]*repository.CustodyRecord, error) {
	query := "SELECT * FROM custody_records WHERE customer_id = $1"
	args := []interface{}{customerID}

	if activeOnly {
		query += " AND status = 'stored'"
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var recs []*repository.CustodyRecord
	err := r.db.Select(ctx, &recs, query, args...)
	return recs, err
}

func (r *CustodyRepo) ListUnreminded(ctx context.Context, providerID, season string) ([]*repository.CustodyRecord, error) {
	var recs []*repository.CustodyRecord
	err := r.db.Select(ctx, &recs, `
        SELECT * FROM custody_records
        WHERE provider_id = $1 AND season = $2 AND status = 'stored' AND reminder_sent = false
        ORDER BY storage_date ASC
    `, providerID, season)
	return recs, err
}

func (r *CustodyRepo) ListExpired(ctx context.Context, providerID string, asOf time.Time) ([]*repository.CustodyRecord, error) {
	var recs []*repository.CustodyRecord
	err := r.db.Select(ctx, &recs, `
        SELECT * FROM custody_records
        WHERE provider_id = $1 AND status = 'stored' AND expiry_date < $2
        ORDER BY expiry_date ASC
    `, providerID, asOf)
	return recs, err
}

func (r *CustodyRepo) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
        UPDATE custody_records
        SET reminder_sent = true, reminder_sent_at = $2, updated_at = $2
        WHERE id = $1
    `, id, at)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
