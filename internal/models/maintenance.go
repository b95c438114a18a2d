package models

// DateLayout is the calendar-date format used for maintenance due dates.
const DateLayout = "2006-01-02"

// TaskStatus enumerates the lifecycle states of a maintenance task. The
// status is assigned when the task is created or edited and is never
// recomputed from the due date afterwards.
type TaskStatus string

const (
	TaskOverdue   TaskStatus = "Overdue"
	TaskUpcoming  TaskStatus = "Upcoming"
	TaskCompleted TaskStatus = "Completed"
)

// IsValid checks if a task status is one of the known values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskOverdue, TaskUpcoming, TaskCompleted:
		return true
	default:
		return false
	}
}

// MaintenanceTask represents scheduled or completed work on a vehicle.
// VehicleName is a display cache of the vehicle's name at creation time.
type MaintenanceTask struct {
	ID          string     `json:"id"`
	VehicleID   string     `json:"vehicleId"`
	VehicleName string     `json:"vehicleName"`
	Task        string     `json:"task"`
	DueDate     string     `json:"dueDate"`
	Status      TaskStatus `json:"status"`
	Cost        *float64   `json:"cost,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// RecordID returns the task's identity key.
func (t MaintenanceTask) RecordID() string { return t.ID }
