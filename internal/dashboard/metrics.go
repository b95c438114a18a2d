package dashboard

import "github.com/aosipenko-sketch/fleet-dashboard/internal/models"

// Metrics is the fleet-overview widget data.
type Metrics struct {
	TotalVehicles     int `json:"totalVehicles"`
	TotalDrivers      int `json:"totalDrivers"`
	MaintenanceAlerts int `json:"maintenanceAlerts"`
}

// ComputeMetrics derives the overview counts from a snapshot. A
// maintenance alert is any task still Overdue or Upcoming.
func ComputeMetrics(snap models.FleetSnapshot) Metrics {
	m := Metrics{
		TotalVehicles: len(snap.Vehicles),
		TotalDrivers:  len(snap.Drivers),
	}
	for _, t := range snap.Maintenance {
		if t.Status == models.TaskOverdue || t.Status == models.TaskUpcoming {
			m.MaintenanceAlerts++
		}
	}
	return m
}
