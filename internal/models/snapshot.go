package models

// FleetSnapshot is one consistent set of vehicles, drivers, and maintenance
// tasks for a single company at a point in time. Snapshots are replaced
// wholesale on every reconciliation cycle, never patched in place.
type FleetSnapshot struct {
	Vehicles    []Vehicle         `json:"vehicles"`
	Drivers     []Driver          `json:"drivers"`
	Maintenance []MaintenanceTask `json:"maintenance"`
}

// Clone returns an independent copy of the snapshot. Record values are
// copied; widgets that need local mutability always work on a clone so no
// two consumers share a mutable slice.
func (s FleetSnapshot) Clone() FleetSnapshot {
	out := FleetSnapshot{
		Vehicles:    make([]Vehicle, len(s.Vehicles)),
		Drivers:     make([]Driver, len(s.Drivers)),
		Maintenance: make([]MaintenanceTask, len(s.Maintenance)),
	}
	copy(out.Vehicles, s.Vehicles)
	copy(out.Drivers, s.Drivers)
	copy(out.Maintenance, s.Maintenance)
	return out
}

// Company describes a selectable company: Key is the partition key used by
// the seed provider, Name the display name.
type Company struct {
	Key          string `json:"key" yaml:"key"`
	Name         string `json:"name" yaml:"name"`
	VehicleCount int    `json:"-" yaml:"vehicles"`
}
