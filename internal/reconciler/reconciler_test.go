package reconciler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// MockIssueSource is a mock implementation of IssueSource.
type MockIssueSource struct {
	mock.Mock
}

func (m *MockIssueSource) FetchOpenIssues(ctx context.Context, knownVehicles []models.Vehicle) ([]models.MaintenanceTask, error) {
	args := m.Called(ctx, knownVehicles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceTask), args.Error(1)
}

// MockTelematicsSource is a mock implementation of TelematicsSource.
type MockTelematicsSource struct {
	mock.Mock
}

func (m *MockTelematicsSource) FetchDeviceStatus(ctx context.Context) ([]models.VehiclePatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VehiclePatch), args.Error(1)
}

var testCompanies = []models.Company{
	{Key: "Nordik", Name: "Nordik Windows Inc", VehicleCount: 8},
	{Key: "Lipton", Name: "Lipton", VehicleCount: 4},
}

func TestLoadSnapshot_NoSourcesConfigured(t *testing.T) {
	rec := New(testCompanies, nil, nil)

	snap, apiError := rec.LoadSnapshot(context.Background(), "Nordik")

	assert.Len(t, snap.Vehicles, 8)
	assert.Len(t, snap.Drivers, 8)
	assert.Empty(t, apiError)
}

func TestLoadSnapshot_UnknownCompany(t *testing.T) {
	rec := New(testCompanies, nil, nil)

	snap, apiError := rec.LoadSnapshot(context.Background(), "Ghost")

	assert.Empty(t, snap.Vehicles)
	assert.Empty(t, apiError)
}

func TestLoadSnapshot_IssuesReplaceSeedMaintenance(t *testing.T) {
	issues := new(MockIssueSource)
	fetched := []models.MaintenanceTask{
		{ID: "fleetio-1", VehicleID: "Nordik-V1", Task: "Brake pads", Status: models.TaskUpcoming},
	}
	issues.On("FetchOpenIssues", mock.Anything, mock.Anything).Return(fetched, nil)

	rec := New(testCompanies, issues, nil)
	snap, apiError := rec.LoadSnapshot(context.Background(), "Nordik")

	assert.Empty(t, apiError)
	// The fetched list replaces the seed maintenance wholesale, even
	// though the seed had its own tasks.
	assert.Equal(t, fetched, snap.Maintenance)
	issues.AssertExpectations(t)
}

func TestLoadSnapshot_IssueFailureKeepsSeedData(t *testing.T) {
	issues := new(MockIssueSource)
	issues.On("FetchOpenIssues", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	rec := New(testCompanies, issues, nil)
	snap, apiError := rec.LoadSnapshot(context.Background(), "Nordik")

	assert.Equal(t, "Failed to fetch from Fleetio. Using fallback data.", apiError)
	assert.Len(t, snap.Vehicles, 8)
	assert.NotEmpty(t, snap.Maintenance)
}

func TestLoadSnapshot_TelematicsPatchesMatchedVehicles(t *testing.T) {
	telematics := new(MockTelematicsSource)
	rec := New(testCompanies, nil, telematics)

	// Patch the first seed vehicle by its deterministic VIN; one patch
	// carries a VIN outside the fleet and must be ignored.
	patches := []models.VehiclePatch{
		{VIN: "VINNO0001", Location: models.Location{Lat: 50, Lng: -70}, Status: models.VehicleActive},
		{VIN: "VINZZ9999", Location: models.Location{Lat: 1, Lng: 1}, Status: models.VehicleActive},
	}
	telematics.On("FetchDeviceStatus", mock.Anything).Return(patches, nil)

	snap, apiError := rec.LoadSnapshot(context.Background(), "Nordik")
	assert.Empty(t, apiError)

	var patched models.Vehicle
	for _, v := range snap.Vehicles {
		if v.VIN == "VINNO0001" {
			patched = v
		}
	}
	assert.Equal(t, models.VehicleActive, patched.Status)
	assert.Equal(t, 50.0, patched.Location.Lat)
	assert.Equal(t, -70.0, patched.Location.Lng)
	// Identity fields survive the patch.
	assert.Equal(t, "Nordik-V1", patched.ID)
	assert.NotEmpty(t, patched.Name)
	telematics.AssertExpectations(t)
}

func TestLoadSnapshot_TelematicsFailureKeepsSeedVehicles(t *testing.T) {
	telematics := new(MockTelematicsSource)
	telematics.On("FetchDeviceStatus", mock.Anything).Return(nil, errors.New("down"))

	rec := New(testCompanies, nil, telematics)
	snap, apiError := rec.LoadSnapshot(context.Background(), "Lipton")

	assert.Equal(t, "Failed to fetch from Geotab. Using fallback data.", apiError)
	assert.Len(t, snap.Vehicles, 4)
}

func TestLoadSnapshot_BothSourcesFail(t *testing.T) {
	issues := new(MockIssueSource)
	issues.On("FetchOpenIssues", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
	telematics := new(MockTelematicsSource)
	telematics.On("FetchDeviceStatus", mock.Anything).Return(nil, errors.New("down"))

	rec := New(testCompanies, issues, telematics)
	snap, apiError := rec.LoadSnapshot(context.Background(), "Nordik")

	assert.Equal(t, "Failed to fetch from Fleetio. Failed to fetch from Geotab. Using fallback data.", apiError)
	assert.Len(t, snap.Vehicles, 8)
	assert.NotEmpty(t, snap.Maintenance)
}

func TestLoadSnapshot_OneFailureDoesNotBlockTheOther(t *testing.T) {
	issues := new(MockIssueSource)
	issues.On("FetchOpenIssues", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	telematics := new(MockTelematicsSource)
	patches := []models.VehiclePatch{
		{VIN: "VINNO0002", Location: models.Location{Lat: 48, Lng: -76}, Status: models.VehicleActive},
	}
	telematics.On("FetchDeviceStatus", mock.Anything).Return(patches, nil)

	rec := New(testCompanies, issues, telematics)
	snap, apiError := rec.LoadSnapshot(context.Background(), "Nordik")

	assert.Equal(t, "Failed to fetch from Fleetio. Using fallback data.", apiError)

	found := false
	for _, v := range snap.Vehicles {
		if v.VIN == "VINNO0002" {
			found = true
			assert.Equal(t, 48.0, v.Location.Lat)
		}
	}
	assert.True(t, found)
}
