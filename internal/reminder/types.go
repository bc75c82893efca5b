package reminder

import (
	"time"

	"github.com/allseasons/tiredepot/internal/custody"
	"github.com/allseasons/tiredepot/internal/repository"
)

// Delivery outcomes. A messenger that only confirms acceptance reports "sent",
// one with delivery receipts reports "delivered"; any error becomes "failed".
const (
	OutcomeSent      = "sent"
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
)

// SeasonSettings configures one season's campaign. The window bounds are
// month-day strings ("MM-DD") marking when the scheduled sweep is due.
type SeasonSettings struct {
	Enabled     bool   `json:"enabled"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	Template    string `json:"template"`
}

type Settings struct {
	Summer SeasonSettings `json:"summer"`
	Winter SeasonSettings `json:"winter"`
}

func (s Settings) forSeason(season custody.Season) SeasonSettings {
	if season == custody.SeasonWinter {
		return s.Winter
	}
	return s.Summer
}

type SweepResult struct {
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

type Stats struct {
	TotalSent      int        `json:"total_sent"`
	TotalDelivered int        `json:"total_delivered"`
	TotalFailed    int        `json:"total_failed"`
	LastSentAt     *time.Time `json:"last_sent_at,omitempty"`
}

func settingsFromRepo(r *repository.ReminderSettings) Settings {
	return Settings{
		Summer: SeasonSettings{
			Enabled:     r.SummerEnabled,
			WindowStart: r.SummerWindowStart,
			WindowEnd:   r.SummerWindowEnd,
			Template:    r.SummerTemplate,
		},
		Winter: SeasonSettings{
			Enabled:     r.WinterEnabled,
			WindowStart: r.WinterWindowStart,
			WindowEnd:   r.WinterWindowEnd,
			Template:    r.WinterTemplate,
		},
	}
}

func settingsToRepo(providerID string, s Settings, now time.Time) *repository.ReminderSettings {
	return &repository.ReminderSettings{
		ProviderID:        providerID,
		SummerEnabled:     s.Summer.Enabled,
		SummerWindowStart: s.Summer.WindowStart,
		SummerWindowEnd:   s.Summer.WindowEnd,
		SummerTemplate:    s.Summer.Template,
		WinterEnabled:     s.Winter.Enabled,
		WinterWindowStart: s.Winter.WindowStart,
		WinterWindowEnd:   s.Winter.WindowEnd,
		WinterTemplate:    s.Winter.Template,
		UpdatedAt:         now,
	}
}
