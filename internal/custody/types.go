package custody

import (
	"time"

	"github.com/google/uuid"

	"github.com/allseasons/tiredepot/internal/depot"
	"github.com/allseasons/tiredepot/internal/repository"
)

type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
)

func (s Season) Valid() bool {
	return s == SeasonSummer || s == SeasonWinter
}

type Status string

const (
	StatusStored    Status = "stored"
	StatusRetrieved Status = "retrieved"
	StatusExpired   Status = "expired"
	StatusDamaged   Status = "damaged"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// TireSet describes the physical set handed over at intake. Tread depths are
// four independent measurements in millimetres, front-left first.
type TireSet struct {
	Season         Season     `json:"season"`
	Brand          string     `json:"brand"`
	Model          string     `json:"model"`
	Size           string     `json:"size"`
	Condition      string     `json:"condition"`
	TreadDepths    [4]float64 `json:"tread_depths"`
	ProductionYear *int       `json:"production_year,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

type Record struct {
	ID             uuid.UUID        `json:"id"`
	CustomerID     string           `json:"customer_id"`
	VehicleID      string           `json:"vehicle_id"`
	ProviderID     string           `json:"provider_id"`
	TireSet        TireSet          `json:"tire_set"`
	Slot           depot.Coordinate `json:"slot"`
	Location       string           `json:"location"`
	Code           string           `json:"code"`
	LabelPNG       []byte           `json:"label_png,omitempty"`
	StorageDate    time.Time        `json:"storage_date"`
	ExpiryDate     time.Time        `json:"expiry_date"`
	LastAccessedAt *time.Time       `json:"last_accessed_at,omitempty"`
	Status         Status           `json:"status"`
	Fee            int              `json:"fee"`
	AmountPaid     int              `json:"amount_paid"`
	PaymentStatus  PaymentStatus    `json:"payment_status"`
	Photos         []string         `json:"photos,omitempty"`
	ReminderSent   bool             `json:"reminder_sent"`
	ReminderSentAt *time.Time       `json:"reminder_sent_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type HistoryEntry struct {
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

func fromRepo(r *repository.CustodyRecord) *Record {
	return &Record{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		VehicleID:  r.VehicleID,
		ProviderID: r.ProviderID,
		TireSet: TireSet{
			Season:         Season(r.Season),
			Brand:          r.Brand,
			Model:          r.Model,
			Size:           r.Size,
			Condition:      r.Condition,
			TreadDepths:    [4]float64{r.TreadFL, r.TreadFR, r.TreadRL, r.TreadRR},
			ProductionYear: r.ProductionYear,
			Notes:          r.Notes,
		},
		Slot:           depot.Coordinate{Corridor: r.Corridor, Rack: r.Rack, Slot: r.Slot},
		Location:       r.Location,
		Code:           r.Code,
		LabelPNG:       r.LabelPNG,
		StorageDate:    r.StorageDate,
		ExpiryDate:     r.ExpiryDate,
		LastAccessedAt: r.LastAccessedAt,
		Status:         Status(r.Status),
		Fee:            r.Fee,
		AmountPaid:     r.AmountPaid,
		PaymentStatus:  PaymentStatus(r.PaymentStatus),
		Photos:         r.Photos,
		ReminderSent:   r.ReminderSent,
		ReminderSentAt: r.ReminderSentAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
