package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/allseasons/tiredepot/internal/db"
	"github.com/allseasons/tiredepot/internal/depot"
	"github.com/allseasons/tiredepot/internal/repository"
)

type SlotRepo struct {
	db db.DB
}

func NewSlotRepo(db db.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

func (r *SlotRepo) GetStates(ctx context.Context, layoutID uuid.UUID) ([]*repository.SlotState, error) {
	var states []*repository.SlotState
	err := r.db.Select(ctx, &states, "SELECT * FROM slot_states WHERE layout_id = $1", layoutID)
	if err != nil {
		return nil, err
	}
	return states, nil
}

func (r *SlotRepo) GetState(ctx context.Context, layoutID uuid.UUID, coord depot.Coordinate) (*repository.SlotState, error) {
	var state repository.SlotState
	err := r.db.Get(ctx, &state, `
        SELECT * FROM slot_states
        WHERE layout_id = $1 AND corridor = $2 AND rack = $3 AND slot = $4
    `, layoutID, coord.Corridor, coord.Rack, coord.Slot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &state, nil
}

// Transition is a compare-and-set: the slot row is only written if its stored
// status still equals "from" (an absent row counts as available). The layout
// counters move in the same transaction, so status and occupancy can never
// drift apart.
func (r *SlotRepo) Transition(ctx context.Context, layoutID uuid.UUID, coord depot.Coordinate, from, to depot.SlotStatus, custodyID *uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var cmdTag pgconn.CommandTag
	if from == depot.SlotAvailable {
		cmdTag, err = tx.Exec(ctx, `
            INSERT INTO slot_states (layout_id, corridor, rack, slot, status, custody_id, last_updated)
            VALUES ($1, $2, $3, $4, $5, $6, now())
            ON CONFLICT (layout_id, corridor, rack, slot)
            DO UPDATE SET status = EXCLUDED.status, custody_id = EXCLUDED.custody_id, last_updated = EXCLUDED.last_updated
            WHERE slot_states.status = $7
        `, layoutID, coord.Corridor, coord.Rack, coord.Slot, string(to), custodyID, string(from))
	} else {
		cmdTag, err = tx.Exec(ctx, `
            UPDATE slot_states
            SET status = $5, custody_id = $6, last_updated = now()
            WHERE layout_id = $1 AND corridor = $2 AND rack = $3 AND slot = $4 AND status = $7
        `, layoutID, coord.Corridor, coord.Rack, coord.Slot, string(to), custodyID, string(from))
	}
	if err != nil {
		return fmt.Errorf("failed to write slot state: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrSlotConflict
	}

	delta := 0
	if to == depot.SlotOccupied && from != depot.SlotOccupied {
		delta = 1
	} else if from == depot.SlotOccupied && to != depot.SlotOccupied {
		delta = -1
	}
	if delta != 0 {
		_, err = tx.Exec(ctx, `
            UPDATE depot_layouts
            SET occupied_slots = occupied_slots + $2,
                available_slots = total_capacity - (occupied_slots + $2),
                occupancy_rate = LEAST(100, GREATEST(0, (occupied_slots + $2) * 100.0 / NULLIF(total_capacity, 0))),
                updated_at = now()
            WHERE id = $1
        `, layoutID, delta)
		if err != nil {
			return fmt.Errorf("failed to update occupancy counters: %w", err)
		}
	}

	return tx.Commit(ctx)
}
