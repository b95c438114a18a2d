package handlers

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/dashboard"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// MaintenanceHandler serves the maintenance board and the task editor.
type MaintenanceHandler struct {
	sessions *dashboard.Registry
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(sessions *dashboard.Registry) *MaintenanceHandler {
	return &MaintenanceHandler{sessions: sessions}
}

// Board returns the session's tasks grouped by status, plus the due-soon
// list the maintenance widget shows.
func (h *MaintenanceHandler) Board(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"grouped": sess.Board.Grouped(),
		"dueSoon": sess.Board.DueSoon(),
	})
}

// SaveTask creates or updates a maintenance task on the session's board.
func (h *MaintenanceHandler) SaveTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sess, ok := sessionFromRequest(w, r, h.sessions)
	if !ok {
		return
	}

	var task models.MaintenanceTask
	if err := readJSON(r, &task); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if task.VehicleID == "" || task.Task == "" || task.DueDate == "" {
		writeError(w, http.StatusBadRequest, "Vehicle, task, and due date are required")
		return
	}
	if _, err := time.Parse(models.DateLayout, task.DueDate); err != nil {
		writeError(w, http.StatusBadRequest, "Due date must be formatted as YYYY-MM-DD")
		return
	}
	if !task.Status.IsValid() {
		writeError(w, http.StatusBadRequest, "Unknown task status")
		return
	}
	if task.Cost != nil && *task.Cost < 0 {
		writeError(w, http.StatusBadRequest, "Cost must not be negative")
		return
	}

	saved := sess.Board.SaveTask(task)
	log.WithFields(log.Fields{
		"task_id":    saved.ID,
		"vehicle_id": saved.VehicleID,
		"status":     saved.Status,
	}).Info("Maintenance task saved")

	writeJSON(w, http.StatusOK, saved)
}
