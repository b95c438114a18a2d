package handlers

import (
	"errors"
	"net/http"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/dashboard"
)

// ListViewHandler serves the vehicle-list and driver-list widgets. Both
// widgets share the same edit-session shape, so the handler dispatches to
// generic helpers parameterized on the record type.
type ListViewHandler struct {
	sessions *dashboard.Registry
}

// NewListViewHandler creates a new list-view handler.
func NewListViewHandler(sessions *dashboard.Registry) *ListViewHandler {
	return &ListViewHandler{sessions: sessions}
}

type listViewResponse[T dashboard.Record] struct {
	Items      []T    `json:"items"`
	ExpandedID string `json:"expandedId"`
	Draft      *T     `json:"draft"`
}

func listViewState[T dashboard.Record](view *dashboard.ListView[T], term string) listViewResponse[T] {
	resp := listViewResponse[T]{
		Items:      view.Filtered(term),
		ExpandedID: view.ExpandedID(),
	}
	if draft, ok := view.Draft(); ok {
		resp.Draft = &draft
	}
	return resp
}

func listItems[T dashboard.Record](w http.ResponseWriter, r *http.Request, view *dashboard.ListView[T]) {
	writeJSON(w, http.StatusOK, listViewState(view, r.URL.Query().Get("q")))
}

func toggleExpand[T dashboard.Record](w http.ResponseWriter, r *http.Request, view *dashboard.ListView[T]) {
	var req struct {
		ID string `json:"id"`
	}
	if err := readJSON(r, &req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "Record id is required")
		return
	}
	view.ToggleExpand(req.ID)
	writeJSON(w, http.StatusOK, listViewState(view, ""))
}

func beginEdit[T dashboard.Record](w http.ResponseWriter, r *http.Request, view *dashboard.ListView[T]) {
	var req struct {
		ID string `json:"id"`
	}
	if err := readJSON(r, &req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "Record id is required")
		return
	}
	if !view.BeginEdit(req.ID) {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}
	writeJSON(w, http.StatusOK, listViewState(view, ""))
}

func updateDraft[T dashboard.Record](w http.ResponseWriter, r *http.Request, view *dashboard.ListView[T]) {
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := view.UpdateDraft(req.Field, req.Value); err != nil {
		switch {
		case errors.Is(err, dashboard.ErrNoDraft):
			writeError(w, http.StatusConflict, "No record is being edited")
		case errors.Is(err, dashboard.ErrUnknownField):
			writeError(w, http.StatusBadRequest, "Unknown field")
		case errors.Is(err, dashboard.ErrInvalidValue):
			writeError(w, http.StatusBadRequest, "Invalid value")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update draft")
		}
		return
	}
	writeJSON(w, http.StatusOK, listViewState(view, ""))
}

func saveDraft[T dashboard.Record](w http.ResponseWriter, r *http.Request, view *dashboard.ListView[T]) {
	if !view.Save() {
		writeError(w, http.StatusConflict, "No record is being edited")
		return
	}
	writeJSON(w, http.StatusOK, listViewState(view, ""))
}

func cancelDraft[T dashboard.Record](w http.ResponseWriter, r *http.Request, view *dashboard.ListView[T]) {
	view.Cancel()
	writeJSON(w, http.StatusOK, listViewState(view, ""))
}

// dispatch runs one list-view operation after the usual method and
// session checks.
func (h *ListViewHandler) dispatch(
	w http.ResponseWriter, r *http.Request, method string,
	op func(http.ResponseWriter, *http.Request, *dashboard.Session),
) {
	if r.Method != method {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}
	op(w, r, sess)
}

// Vehicle-list widget operations.

func (h *ListViewHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodGet, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		listItems(w, r, s.Vehicles)
	})
}

func (h *ListViewHandler) VehicleExpand(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodPost, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		toggleExpand(w, r, s.Vehicles)
	})
}

func (h *ListViewHandler) VehicleEdit(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodPost, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		beginEdit(w, r, s.Vehicles)
	})
}

func (h *ListViewHandler) VehicleDraft(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodPost, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		updateDraft(w, r, s.Vehicles)
	})
}

func (h *ListViewHandler) VehicleSave(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodPost, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		saveDraft(w, r, s.Vehicles)
	})
}

func (h *ListViewHandler) VehicleCancel(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodPost, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		cancelDraft(w, r, s.Vehicles)
	})
}

// Driver-list widget operations.

func (h *ListViewHandler) Drivers(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodGet, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		listItems(w, r, s.Drivers)
	})
}

func (h *ListViewHandler) DriverExpand(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodPost, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		toggleExpand(w, r, s.Drivers)
	})
}

func (h *ListViewHandler) DriverEdit(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodPost, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		beginEdit(w, r, s.Drivers)
	})
}

func (h *ListViewHandler) DriverDraft(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodPost, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		updateDraft(w, r, s.Drivers)
	})
}

func (h *ListViewHandler) DriverSave(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodPost, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		saveDraft(w, r, s.Drivers)
	})
}

func (h *ListViewHandler) DriverCancel(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, http.MethodPost, func(w http.ResponseWriter, r *http.Request, s *dashboard.Session) {
		cancelDraft(w, r, s.Drivers)
	})
}
