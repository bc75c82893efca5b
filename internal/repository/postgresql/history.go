package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/allseasons/tiredepot/internal/db"
	"github.com/allseasons/tiredepot/internal/repository"
)

type CustodyHistoryRepo struct {
	db db.DB
}

func NewCustodyHistoryRepo(db db.DB) *CustodyHistoryRepo {
	return &CustodyHistoryRepo{db: db}
}

func (r *CustodyHistoryRepo) Create(ctx context.Context, entry *repository.CustodyHistoryEntry) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO custody_history (custody_id, status, changed_at)
        VALUES ($1, $2, $3)
    `, entry.CustodyID, entry.Status, entry.ChangedAt)
	return err
}

func (r *CustodyHistoryRepo) GetByCustodyID(ctx context.Context, custodyID uuid.UUID) ([]*repository.CustodyHistoryEntry, error) {
	var entries []*repository.CustodyHistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM custody_history
        WHERE custody_id = $1
        ORDER BY changed_at ASC
    `, custodyID)
	return entries, err
}
