package dashboard

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// Board is the maintenance-management page state: a session-local task
// list seeded from the current snapshot. Like the list widgets, edits stay
// in this local copy and are discarded when the company changes.
type Board struct {
	mu       sync.Mutex
	tasks    []models.MaintenanceTask
	vehicles []models.Vehicle
}

// NewBoard creates a board over a copy of the snapshot's tasks and
// vehicles.
func NewBoard(snap models.FleetSnapshot) *Board {
	b := &Board{}
	b.Reset(snap)
	return b
}

// Reset replaces the board contents from a fresh snapshot.
func (b *Board) Reset(snap models.FleetSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = make([]models.MaintenanceTask, len(snap.Maintenance))
	copy(b.tasks, snap.Maintenance)
	b.vehicles = make([]models.Vehicle, len(snap.Vehicles))
	copy(b.vehicles, snap.Vehicles)
}

// Tasks returns the board's task list.
func (b *Board) Tasks() []models.MaintenanceTask {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.MaintenanceTask, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// SaveTask upserts a task: an existing id updates in place, a missing id
// creates a new task at the top of the list. The denormalized vehicle name
// is resolved from the board's vehicle list at save time. The stored task
// is returned.
func (b *Board) SaveTask(task models.MaintenanceTask) models.MaintenanceTask {
	b.mu.Lock()
	defer b.mu.Unlock()

	task.VehicleName = "Unknown"
	for _, v := range b.vehicles {
		if v.ID == task.VehicleID {
			task.VehicleName = v.Name
			break
		}
	}

	if task.ID != "" {
		for i, existing := range b.tasks {
			if existing.ID == task.ID {
				b.tasks[i] = task
				return task
			}
		}
	}
	if task.ID == "" {
		task.ID = "task-" + uuid.NewString()
	}
	b.tasks = append([]models.MaintenanceTask{task}, b.tasks...)
	return task
}

// Grouped returns the tasks bucketed by status, each bucket sorted by due
// date descending.
func (b *Board) Grouped() map[models.TaskStatus][]models.MaintenanceTask {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := map[models.TaskStatus][]models.MaintenanceTask{
		models.TaskOverdue:   {},
		models.TaskUpcoming:  {},
		models.TaskCompleted: {},
	}
	for _, t := range b.tasks {
		out[t.Status] = append(out[t.Status], t)
	}
	for status := range out {
		group := out[status]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].DueDate > group[j].DueDate
		})
	}
	return out
}

// DueSoon returns the Overdue and Upcoming tasks sorted by due date
// ascending, for the maintenance widget.
func (b *Board) DueSoon() []models.MaintenanceTask {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.MaintenanceTask, 0, len(b.tasks))
	for _, t := range b.tasks {
		if t.Status == models.TaskOverdue || t.Status == models.TaskUpcoming {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate < out[j].DueDate
	})
	return out
}
