// Package reconciler merges the seed baseline with the optional external
// data sources into one consistent fleet snapshot per company, isolating
// adapter failures so the dashboard stays usable on fallback data.
package reconciler

import (
	"context"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/seed"
)

// Fixed banner messages; the UI shows them joined, with the fallback
// suffix appended.
const (
	msgFleetioFailed = "Failed to fetch from Fleetio."
	msgGeotabFailed  = "Failed to fetch from Geotab."
	msgFallback      = "Using fallback data."
)

// IssueSource lists open issues mapped to maintenance tasks, resolving
// vehicles by VIN against the supplied baseline.
type IssueSource interface {
	FetchOpenIssues(ctx context.Context, knownVehicles []models.Vehicle) ([]models.MaintenanceTask, error)
}

// TelematicsSource reports live per-device vehicle patches.
type TelematicsSource interface {
	FetchDeviceStatus(ctx context.Context) ([]models.VehiclePatch, error)
}

// Reconciler produces fleet snapshots. A nil source means that integration
// is not configured and is skipped entirely.
type Reconciler struct {
	companies  map[string]models.Company
	issues     IssueSource
	telematics TelematicsSource
}

// New creates a reconciler over the configured company table and the
// optional external sources.
func New(companies []models.Company, issues IssueSource, telematics TelematicsSource) *Reconciler {
	byKey := make(map[string]models.Company, len(companies))
	for _, c := range companies {
		byKey[c.Key] = c
	}
	return &Reconciler{companies: byKey, issues: issues, telematics: telematics}
}

// LoadSnapshot runs one full reconciliation cycle for a company. The seed
// baseline always loads; the two adapter fetches run concurrently and fail
// independently. The returned apiError is empty on full success, otherwise
// a single human-readable summary of every failure plus the fallback note.
func (r *Reconciler) LoadSnapshot(ctx context.Context, companyKey string) (models.FleetSnapshot, string) {
	company, ok := r.companies[companyKey]
	if !ok {
		// Unknown companies get an empty baseline rather than an error;
		// company selection is validated at the handler boundary.
		company = models.Company{Key: companyKey}
	}
	snap := seed.Generate(company.Key, company.VehicleCount)

	var (
		wg sync.WaitGroup

		tasks      []models.MaintenanceTask
		tasksErr   error
		patches    []models.VehiclePatch
		patchesErr error
	)

	if r.issues != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tasks, tasksErr = r.issues.FetchOpenIssues(ctx, snap.Vehicles)
		}()
	}
	if r.telematics != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			patches, patchesErr = r.telematics.FetchDeviceStatus(ctx)
		}()
	}
	wg.Wait()

	var failures []string

	if r.issues != nil {
		if tasksErr != nil {
			log.WithError(tasksErr).WithField("company", companyKey).Warn("Fleetio fetch failed, keeping seed maintenance data")
			failures = append(failures, msgFleetioFailed)
		} else {
			// Adapter data supersedes the seed maintenance list wholesale.
			snap.Maintenance = tasks
			log.WithFields(log.Fields{"company": companyKey, "tasks": len(tasks)}).Info("Replaced maintenance data from Fleetio")
		}
	}

	if r.telematics != nil {
		if patchesErr != nil {
			log.WithError(patchesErr).WithField("company", companyKey).Warn("Geotab fetch failed, keeping seed vehicle data")
			failures = append(failures, msgGeotabFailed)
		} else {
			byVIN := make(map[string]models.VehiclePatch, len(patches))
			for _, p := range patches {
				byVIN[p.VIN] = p
			}
			merged := 0
			for i, v := range snap.Vehicles {
				if p, ok := byVIN[v.VIN]; ok {
					snap.Vehicles[i] = p.Apply(v)
					merged++
				}
			}
			log.WithFields(log.Fields{"company": companyKey, "merged": merged}).Info("Merged live vehicle data from Geotab")
		}
	}

	if len(failures) == 0 {
		return snap, ""
	}
	return snap, strings.Join(failures, " ") + " " + msgFallback
}
