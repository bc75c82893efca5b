package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound = errors.New("not found")
	ErrSlotConflict   = errors.New("slot state changed")
)

type DepotLayout struct {
	ID             uuid.UUID `db:"id"`
	ProviderID     string    `db:"provider_id"`
	TotalCapacity  int       `db:"total_capacity"`
	OccupiedSlots  int       `db:"occupied_slots"`
	AvailableSlots int       `db:"available_slots"`
	OccupancyRate  float64   `db:"occupancy_rate"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type DepotCorridor struct {
	ID           int64     `db:"id"`
	LayoutID     uuid.UUID `db:"layout_id"`
	Position     int       `db:"position"`
	Name         string    `db:"name"`
	Racks        int       `db:"racks"`
	SlotsPerRack int       `db:"slots_per_rack"`
	Capacity     int       `db:"capacity"`
}

type SlotState struct {
	LayoutID    uuid.UUID  `db:"layout_id"`
	Corridor    string     `db:"corridor"`
	Rack        int        `db:"rack"`
	Slot        int        `db:"slot"`
	Status      string     `db:"status"`
	CustodyID   *uuid.UUID `db:"custody_id"`
	LastUpdated time.Time  `db:"last_updated"`
}

type CustodyRecord struct {
	ID             uuid.UUID  `db:"id"`
	CustomerID     string     `db:"customer_id"`
	VehicleID      string     `db:"vehicle_id"`
	ProviderID     string     `db:"provider_id"`
	Season         string     `db:"season"`
	Brand          string     `db:"brand"`
	Model          string     `db:"model"`
	Size           string     `db:"size"`
	Condition      string     `db:"condition"`
	TreadFL        float64    `db:"tread_fl"`
	TreadFR        float64    `db:"tread_fr"`
	TreadRL        float64    `db:"tread_rl"`
	TreadRR        float64    `db:"tread_rr"`
	ProductionYear *int       `db:"production_year"`
	Notes          string     `db:"notes"`
	Corridor       string     `db:"corridor"`
	Rack           int        `db:"rack"`
	Slot           int        `db:"slot"`
	Location       string     `db:"location"`
	Code           string     `db:"code"`
	LabelPNG       []byte     `db:"label_png"`
	StorageDate    time.Time  `db:"storage_date"`
	ExpiryDate     time.Time  `db:"expiry_date"`
	LastAccessedAt *time.Time `db:"last_accessed_at"`
	Status         string     `db:"status"`
	Fee            int        `db:"fee"`
	AmountPaid     int        `db:"amount_paid"`
	PaymentStatus  string     `db:"payment_status"`
	Photos         []string   `db:"photos"`
	ReminderSent   bool       `db:"reminder_sent"`
	ReminderSentAt *time.Time `db:"reminder_sent_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type CustodyHistoryEntry struct {
	ID        int64     `db:"id"`
	CustodyID uuid.UUID `db:"custody_id"`
	Status    string    `db:"status"`
	ChangedAt time.Time `db:"changed_at"`
}

type ReminderSettings struct {
	ProviderID        string    `db:"provider_id"`
	SummerEnabled     bool      `db:"summer_enabled"`
	SummerWindowStart string    `db:"summer_window_start"`
	SummerWindowEnd   string    `db:"summer_window_end"`
	SummerTemplate    string    `db:"summer_template"`
	WinterEnabled     bool      `db:"winter_enabled"`
	WinterWindowStart string    `db:"winter_window_start"`
	WinterWindowEnd   string    `db:"winter_window_end"`
	WinterTemplate    string    `db:"winter_template"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type ReminderDelivery struct {
	ID         int64     `db:"id"`
	CustodyID  uuid.UUID `db:"custody_id"`
	CustomerID string    `db:"customer_id"`
	ProviderID string    `db:"provider_id"`
	Season     string    `db:"season"`
	SentAt     time.Time `db:"sent_at"`
	Message    string    `db:"message"`
	Outcome    string    `db:"outcome"`
	ExternalID string    `db:"external_id"`
}

type ReminderStats struct {
	ProviderID     string     `db:"provider_id"`
	TotalSent      int        `db:"total_sent"`
	TotalDelivered int        `db:"total_delivered"`
	TotalFailed    int        `db:"total_failed"`
	LastSentAt     *time.Time `db:"last_sent_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}
