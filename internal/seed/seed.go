package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// Baseline depot the generated fleet is scattered around (Ottawa).
var depot = models.Location{Lat: 45.4215, Lng: -75.6972}

var (
	firstNames    = []string{"John", "Jane", "Alex", "Emily", "Chris", "Katie"}
	lastNames     = []string{"Smith", "Doe", "Johnson", "Williams", "Brown", "Davis"}
	vehicleModels = []string{"Ford Transit", "Mercedes Sprinter", "Dodge Ram ProMaster", "Chevy Express"}
	taskNames     = []string{"Oil Change", "Tire Rotation", "Brake Inspection", "Engine Check"}
)

// Generate produces the baseline fleet snapshot for one company. The
// structure is deterministic (one driver per vehicle, every 4th unit gets a
// due task, every 7th a completed one) but numeric fields carry random
// jitter, so repeated calls are not byte-identical. A vehicleCount of zero
// or less yields an empty snapshot; Generate never fails.
func Generate(companyKey string, vehicleCount int) models.FleetSnapshot {
	snap := models.FleetSnapshot{
		Vehicles:    []models.Vehicle{},
		Drivers:     []models.Driver{},
		Maintenance: []models.MaintenanceTask{},
	}
	if vehicleCount <= 0 {
		return snap
	}

	vinPrefix := strings.ToUpper(companyKey)
	if len(vinPrefix) > 2 {
		vinPrefix = vinPrefix[:2]
	}

	now := time.Now()
	for i := 1; i <= vehicleCount; i++ {
		vehicleID := fmt.Sprintf("%s-V%d", companyKey, i)
		driverName := fmt.Sprintf("%s %s", firstNames[i%len(firstNames)], lastNames[i%len(lastNames)])
		unitName := fmt.Sprintf("Unit %d", i)

		driverStatus := models.DriverOnDuty
		if i%3 == 0 {
			driverStatus = models.DriverOffDuty
		}
		snap.Drivers = append(snap.Drivers, models.Driver{
			ID:        fmt.Sprintf("%s-D%d", companyKey, i),
			Name:      driverName,
			VehicleID: strPtr(vehicleID),
			Status:    driverStatus,
			Phone:     fmt.Sprintf("555-01%02d", i),
		})

		vehicleStatus := models.VehicleIdle
		if i%5 == 0 {
			vehicleStatus = models.VehicleInShop
		} else if i%2 == 0 {
			vehicleStatus = models.VehicleActive
		}
		snap.Vehicles = append(snap.Vehicles, models.Vehicle{
			ID:     vehicleID,
			Name:   unitName,
			Driver: strPtr(driverName),
			Status: vehicleStatus,
			Location: models.Location{
				Lat: depot.Lat + (rand.Float64()-0.5)*0.2,
				Lng: depot.Lng + (rand.Float64()-0.5)*0.3,
			},
			Model:        vehicleModels[i%len(vehicleModels)],
			LicensePlate: fmt.Sprintf("AB%02dCD", i),
			VIN:          fmt.Sprintf("VIN%s%04d", vinPrefix, i),
		})

		if i%4 == 0 {
			days := rand.Intn(10)
			if rand.Float64() <= 0.5 {
				days = -rand.Intn(5) - 1
			}
			status := models.TaskUpcoming
			if days < 0 {
				status = models.TaskOverdue
			}
			snap.Maintenance = append(snap.Maintenance, models.MaintenanceTask{
				ID:          fmt.Sprintf("%s-M%d", companyKey, i),
				VehicleID:   vehicleID,
				VehicleName: unitName,
				Task:        taskNames[i%len(taskNames)],
				DueDate:     now.AddDate(0, 0, days).Format(models.DateLayout),
				Status:      status,
				Cost:        floatPtr(float64(rand.Intn(400) + 75)),
				Notes:       "Scheduled check. Follow standard procedure.",
			})
		}

		if i%7 == 0 {
			daysAgo := rand.Intn(30) + 15
			snap.Maintenance = append(snap.Maintenance, models.MaintenanceTask{
				ID:          fmt.Sprintf("%s-MC%d", companyKey, i),
				VehicleID:   vehicleID,
				VehicleName: unitName,
				Task:        taskNames[(i+1)%len(taskNames)],
				DueDate:     now.AddDate(0, 0, -daysAgo).Format(models.DateLayout),
				Status:      models.TaskCompleted,
				Cost:        floatPtr(float64(rand.Intn(300) + 75)),
				Notes:       "Completed successfully. No issues found.",
			})
		}
	}

	return snap
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
