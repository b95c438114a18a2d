package models

// VehicleStatus enumerates the operational states a vehicle can be in.
type VehicleStatus string

const (
	VehicleActive VehicleStatus = "Active"
	VehicleInShop VehicleStatus = "In-Shop"
	VehicleIdle   VehicleStatus = "Idle"
)

// IsValid checks if a vehicle status is one of the known values.
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleActive, VehicleInShop, VehicleIdle:
		return true
	default:
		return false
	}
}

// Location represents a geographical position with latitude and longitude.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Vehicle represents a fleet vehicle. ID is the stable identity key; VIN is
// the join key to external telematics data and never changes once assigned.
type Vehicle struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Driver       *string       `json:"driver"`
	Status       VehicleStatus `json:"status"`
	Location     Location      `json:"location"`
	Model        string        `json:"model"`
	LicensePlate string        `json:"licensePlate"`
	VIN          string        `json:"vin"`
}

// RecordID returns the vehicle's identity key.
func (v Vehicle) RecordID() string { return v.ID }

// VehiclePatch is a partial vehicle update keyed by VIN, as reported by a
// telematics provider. Only Location and Status are carried.
type VehiclePatch struct {
	VIN      string        `json:"vin"`
	Location Location      `json:"location"`
	Status   VehicleStatus `json:"status"`
}

// Apply overlays the patched fields onto a copy of v, leaving every other
// field untouched.
func (p VehiclePatch) Apply(v Vehicle) Vehicle {
	v.Location = p.Location
	v.Status = p.Status
	return v
}
