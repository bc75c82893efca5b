package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/allseasons/tiredepot/internal/custody"
	"github.com/allseasons/tiredepot/internal/depot"
	"github.com/allseasons/tiredepot/internal/reminder"
)

type corridorRequest struct {
	Name         string `json:"name"`
	Racks        int    `json:"racks"`
	SlotsPerRack int    `json:"slots_per_rack"`
}

type slotView struct {
	Corridor    string     `json:"corridor"`
	Rack        int        `json:"rack"`
	Slot        int        `json:"slot"`
	Status      string     `json:"status"`
	CustodyID   *uuid.UUID `json:"custody_id,omitempty"`
	LastUpdated time.Time  `json:"last_updated"`
}

type depotStatusView struct {
	ProviderID     string           `json:"provider_id"`
	TotalCapacity  int              `json:"total_capacity"`
	OccupiedSlots  int              `json:"occupied_slots"`
	AvailableSlots int              `json:"available_slots"`
	OccupancyRate  float64          `json:"occupancy_rate"`
	Corridors      []depot.Corridor `json:"corridors"`
	Slots          []slotView       `json:"slots"`
}

func statusView(layout *depot.Layout) depotStatusView {
	view := depotStatusView{
		ProviderID:     layout.ProviderID,
		TotalCapacity:  layout.TotalCapacity,
		OccupiedSlots:  layout.OccupiedSlots,
		AvailableSlots: layout.AvailableSlots,
		OccupancyRate:  layout.OccupancyRate,
		Corridors:      layout.Corridors,
		Slots:          []slotView{},
	}
	// Deterministic order: same scan order the allocator uses.
	for _, c := range layout.Corridors {
		for rack := 1; rack <= c.Racks; rack++ {
			for slot := 1; slot <= c.SlotsPerRack; slot++ {
				coord := depot.Coordinate{Corridor: c.Name, Rack: rack, Slot: slot}
				if info, ok := layout.Slots[coord]; ok {
					view.Slots = append(view.Slots, slotView{
						Corridor:    coord.Corridor,
						Rack:        coord.Rack,
						Slot:        coord.Slot,
						Status:      string(info.Status),
						CustodyID:   info.CustodyID,
						LastUpdated: info.LastUpdated,
					})
				}
			}
		}
	}
	return view
}

func (s *Server) handleDefineLayout(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["provider"]

	var req struct {
		Corridors []corridorRequest `json:"corridors"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	corridors := make([]depot.Corridor, len(req.Corridors))
	for i, c := range req.Corridors {
		corridors[i] = depot.Corridor{Name: c.Name, Racks: c.Racks, SlotsPerRack: c.SlotsPerRack}
	}

	layout, err := s.depot.DefineLayout(r.Context(), providerID, corridors)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.statusCache.Invalidate(providerID)
	respondJSON(w, http.StatusOK, statusView(layout))
}

func (s *Server) handleDepotStatus(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["provider"]

	if layout, found := s.statusCache.Get(providerID); found {
		respondJSON(w, http.StatusOK, statusView(layout))
		return
	}

	layout, err := s.depot.Status(r.Context(), providerID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.statusCache.Set(providerID, layout)
	respondJSON(w, http.StatusOK, statusView(layout))
}

func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID string          `json:"customer_id"`
		VehicleID  string          `json:"vehicle_id"`
		ProviderID string          `json:"provider_id"`
		TireSet    custody.TireSet `json:"tire_set"`
		Fee        int             `json:"fee"`
		Photos     []string        `json:"photos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := s.custody.Intake(r.Context(), custody.IntakeRequest{
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
		ProviderID: req.ProviderID,
		TireSet:    req.TireSet,
		Fee:        req.Fee,
		Photos:     req.Photos,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.statusCache.Invalidate(req.ProviderID)
	respondJSON(w, http.StatusCreated, record)
}

func (s *Server) handleLookupByCode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	record, err := s.custody.LookupByCode(r.Context(), vars["provider"], vars["code"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleRelease(w http.ResponseWriter, r *http.Request) {
	s.handleFinalize(w, r, s.custody.Release)
}

func (s *Server) handleMarkDamaged(w http.ResponseWriter, r *http.Request) {
	s.handleFinalize(w, r, s.custody.MarkDamaged)
}

func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID, providerID string) (*custody.Record, error)) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req struct {
		ProviderID string `json:"provider_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := op(r.Context(), recordID, req.ProviderID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.statusCache.Invalidate(req.ProviderID)
	respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid record id")
		return
	}

	entries, err := s.custody.History(r.Context(), recordID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCustomerRecords(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customer"]

	limit := 0
	if raw := r.URL.Query().Get("last"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "Invalid 'last' parameter")
			return
		}
		limit = n
	}
	activeOnly := r.URL.Query().Get("active") == "true"

	records, err := s.custody.ListByCustomer(r.Context(), customerID, limit, activeOnly)
	if err != nil {
		s.writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

func (s *Server) handleExpiredRecords(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["provider"]

	records, err := s.custody.ExpiredRecords(r.Context(), providerID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

func (s *Server) handleUpdateReminderSettings(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["provider"]

	var settings reminder.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.reminder.UpdateSettings(r.Context(), providerID, settings); err != nil {
		s.writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

func (s *Server) handleGetReminderSettings(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["provider"]

	settings, err := s.reminder.Settings(r.Context(), providerID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	stats, err := s.reminder.ProviderStats(r.Context(), providerID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"settings": settings,
		"stats":    stats,
	})
}

func (s *Server) handleRunSweep(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := s.reminder.RunSeasonalSweep(r.Context(), vars["provider"], custody.Season(vars["season"]))
	if err != nil {
		s.writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
