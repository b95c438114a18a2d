package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/dashboard"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// DashboardHandler serves the company list, the aggregated dashboard view,
// and the widget layout operations.
type DashboardHandler struct {
	sessions  *dashboard.Registry
	companies []models.Company
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(sessions *dashboard.Registry, companies []models.Company) *DashboardHandler {
	return &DashboardHandler{sessions: sessions, companies: companies}
}

// Companies lists the selectable companies.
func (h *DashboardHandler) Companies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if _, ok := sessionFromRequest(w, r, h.sessions); !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.companies)
}

// SelectCompany runs a full reconciliation cycle for the requested company
// and rebuilds the session's view state from the new snapshot.
func (h *DashboardHandler) SelectCompany(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}

	var req struct {
		Company string `json:"company"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !h.knownCompany(req.Company) {
		writeError(w, http.StatusBadRequest, "Unknown company")
		return
	}

	committed := sess.SelectCompany(r.Context(), req.Company)
	if !committed {
		// A newer selection raced this one; the client will refetch.
		log.WithField("company", req.Company).Info("Discarded stale reconciliation result")
	}
	h.writeDashboard(w, sess)
}

// Dashboard returns the full dashboard view: fleet state, widget order,
// metrics, and banner state.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}
	h.writeDashboard(w, sess)
}

// DismissBanner hides the API-warning banner for the current cycle.
func (h *DashboardHandler) DismissBanner(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}
	sess.DismissBanner()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Banner dismissed"})
}

// ToggleEditMode flips the layout's edit mode.
func (h *DashboardHandler) ToggleEditMode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"editMode": sess.Layout.ToggleEditMode()})
}

// ReorderWidgets moves one widget to a new position.
func (h *DashboardHandler) ReorderWidgets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}

	var req struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	sess.Layout.Reorder(req.From, req.To)
	writeJSON(w, http.StatusOK, map[string]interface{}{"widgets": sess.Layout.Widgets()})
}

// RemoveWidget drops a widget from the layout.
func (h *DashboardHandler) RemoveWidget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}

	var req struct {
		Widget models.WidgetType `json:"widget"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !req.Widget.IsValid() {
		writeError(w, http.StatusBadRequest, "Unknown widget type")
		return
	}
	sess.Layout.Remove(req.Widget)
	writeJSON(w, http.StatusOK, map[string]interface{}{"widgets": sess.Layout.Widgets()})
}

type widgetView struct {
	Type     models.WidgetType `json:"type"`
	Title    string            `json:"title"`
	GridSpan string            `json:"gridSpan"`
}

type dashboardView struct {
	User            models.User          `json:"user"`
	Company         string               `json:"company"`
	Loading         bool                 `json:"loading"`
	APIError        *string              `json:"apiError"`
	BannerDismissed bool                 `json:"bannerDismissed"`
	EditMode        bool                 `json:"editMode"`
	Widgets         []widgetView         `json:"widgets"`
	Metrics         dashboard.Metrics    `json:"metrics"`
	Snapshot        models.FleetSnapshot `json:"snapshot"`
}

func (h *DashboardHandler) writeDashboard(w http.ResponseWriter, sess *dashboard.Session) {
	state := sess.Fleet.Current()

	view := dashboardView{
		User:            sess.User(),
		Company:         state.Company,
		Loading:         state.Loading,
		BannerDismissed: sess.BannerDismissed(),
		EditMode:        sess.Layout.EditMode(),
		Metrics:         dashboard.ComputeMetrics(state.Snapshot),
		Snapshot:        state.Snapshot,
	}
	if state.APIError != "" {
		view.APIError = &state.APIError
	}
	for _, wt := range sess.Layout.Widgets() {
		meta := models.WidgetConfig[wt]
		view.Widgets = append(view.Widgets, widgetView{Type: wt, Title: meta.Title, GridSpan: meta.GridSpan})
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *DashboardHandler) knownCompany(key string) bool {
	for _, c := range h.companies {
		if c.Key == key {
			return true
		}
	}
	return false
}
