package handlers

import (
	"net/http"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/dashboard"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/seed"
)

// FeedsHandler serves the static mail and calendar feeds and the vehicle
// map markers.
type FeedsHandler struct {
	sessions   *dashboard.Registry
	mapsAPIKey string
}

// NewFeedsHandler creates a new feeds handler. mapsAPIKey may be empty;
// the map widget then renders its fallback view.
func NewFeedsHandler(sessions *dashboard.Registry, mapsAPIKey string) *FeedsHandler {
	return &FeedsHandler{sessions: sessions, mapsAPIKey: mapsAPIKey}
}

// Mail returns the mail widget's message feed.
func (h *FeedsHandler) Mail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if _, ok := sessionFromRequest(w, r, h.sessions); !ok {
		return
	}
	writeJSON(w, http.StatusOK, seed.MailFeed())
}

// Calendar returns the calendar widget's event feed.
func (h *FeedsHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if _, ok := sessionFromRequest(w, r, h.sessions); !ok {
		return
	}
	writeJSON(w, http.StatusOK, seed.CalendarFeed())
}

type mapMarker struct {
	VehicleID string               `json:"vehicleId"`
	Name      string               `json:"name"`
	Status    models.VehicleStatus `json:"status"`
	Location  models.Location      `json:"location"`
}

// MapMarkers returns one marker per vehicle in the current snapshot, plus
// whether a maps API key is configured.
func (h *FeedsHandler) MapMarkers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}

	snap := sess.Fleet.Current().Snapshot
	markers := make([]mapMarker, 0, len(snap.Vehicles))
	for _, v := range snap.Vehicles {
		markers = append(markers, mapMarker{
			VehicleID: v.ID,
			Name:      v.Name,
			Status:    v.Status,
			Location:  v.Location,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mapsConfigured": h.mapsAPIKey != "",
		"markers":        markers,
	})
}
