package models

// DriverStatus enumerates the duty states a driver can be in.
type DriverStatus string

const (
	DriverOnDuty  DriverStatus = "On-Duty"
	DriverOffDuty DriverStatus = "Off-Duty"
)

// IsValid checks if a driver status is one of the known values.
func (s DriverStatus) IsValid() bool {
	switch s {
	case DriverOnDuty, DriverOffDuty:
		return true
	default:
		return false
	}
}

// Driver represents a fleet driver. VehicleID may reference a Vehicle.ID;
// dangling references are tolerated and rendered as "N/A".
type Driver struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	VehicleID *string      `json:"vehicleId"`
	Status    DriverStatus `json:"status"`
	Phone     string       `json:"phone"`
}

// RecordID returns the driver's identity key.
func (d Driver) RecordID() string { return d.ID }
