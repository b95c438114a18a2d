// fleetmock is a local stand-in for the Fleetio and Geotab APIs. It serves
// issue and device-status payloads whose VINs line up with the seed fleet
// for one company, so the dashboard can be exercised end to end without
// real credentials. Failure injection covers both upstream error modes:
// non-2xx responses and an error field inside a 200 body.
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/seed"
)

type mockIssue struct {
	ID      int64 `json:"id"`
	Vehicle struct {
		VIN string `json:"vin"`
	} `json:"vehicle"`
	VehicleName          string `json:"vehicle_name"`
	Summary              string `json:"summary"`
	DueDate              string `json:"due_date"`
	EstimatedCostInCents *int64 `json:"estimated_cost_in_cents"`
	Description          string `json:"description"`
}

type mockDeviceStatus struct {
	Device struct {
		VIN string `json:"vin"`
	} `json:"device"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsDriving bool    `json:"isDriving"`
}

type mockServer struct {
	vehicles []models.Vehicle
	failRate float64
}

func (m *mockServer) shouldFail() bool {
	return m.failRate > 0 && rand.Float64() < m.failRate
}

// issues serves a Fleetio-shaped open-issue list. Roughly every third
// vehicle gets an issue; one extra issue carries an unknown VIN to
// exercise the consumer's drop path.
func (m *mockServer) issues(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.Header.Get("Authorization") == "" || r.Header.Get("Account-Token") == "" {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	if m.shouldFail() {
		log.Warn("Injected issues failure")
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	summaries := []string{"Check engine light", "Windshield crack", "Brake pads worn", "Coolant leak"}
	now := time.Now()

	issues := make([]mockIssue, 0, len(m.vehicles)/3+1)
	for i, v := range m.vehicles {
		if i%3 != 0 {
			continue
		}
		issue := mockIssue{
			ID:          int64(1000 + i),
			VehicleName: v.Name,
			Summary:     summaries[i%len(summaries)],
			DueDate:     now.AddDate(0, 0, rand.Intn(14)-4).Format(models.DateLayout),
			Description: "Reported by driver during inspection.",
		}
		issue.Vehicle.VIN = v.VIN
		if rand.Float64() < 0.7 {
			cents := int64(rand.Intn(40000) + 5000)
			issue.EstimatedCostInCents = &cents
		}
		issues = append(issues, issue)
	}
	stray := mockIssue{ID: 9999, VehicleName: "Loaner", Summary: "Detailing", DueDate: now.Format(models.DateLayout)}
	stray.Vehicle.VIN = "VINXX0000"
	issues = append(issues, stray)

	log.WithField("issues", len(issues)).Info("Served issue list")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(issues)
}

// rpc serves a Geotab-shaped Get/DeviceStatusInfo response covering every
// seed vehicle, with a fresh position near its last one.
func (m *mockServer) rpc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Method string `json:"method"`
		Params struct {
			TypeName string `json:"typeName"`
		} `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":{"message":"malformed request"}}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if req.Method != "Get" || req.Params.TypeName != "DeviceStatusInfo" {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": fmt.Sprintf("unsupported call %s/%s", req.Method, req.Params.TypeName)},
		})
		return
	}
	if m.shouldFail() {
		log.Warn("Injected device-status failure")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "InvalidUserException: credentials rejected"},
		})
		return
	}

	result := make([]mockDeviceStatus, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		st := mockDeviceStatus{
			Latitude:  v.Location.Lat + (rand.Float64()-0.5)*0.02,
			Longitude: v.Location.Lng + (rand.Float64()-0.5)*0.02,
			IsDriving: rand.Float64() < 0.5,
		}
		st.Device.VIN = v.VIN
		result = append(result, st)
	}

	log.WithField("devices", len(result)).Info("Served device status")
	json.NewEncoder(w).Encode(map[string]interface{}{"result": result})
}

func main() {
	company := os.Getenv("MOCK_COMPANY")
	if company == "" {
		company = "Nordik"
	}
	fleetSize := 25
	if v := os.Getenv("MOCK_FLEET_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			fleetSize = n
		}
	}
	failRate := 0.0
	if v := os.Getenv("MOCK_FAIL_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			failRate = f
		}
	}
	port := 8090
	if v := os.Getenv("MOCK_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			port = n
		}
	}

	snap := seed.Generate(company, fleetSize)
	srv := &mockServer{vehicles: snap.Vehicles, failRate: failRate}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/issues", srv.issues)
	mux.HandleFunc("/api/v1", srv.rpc)

	log.WithFields(log.Fields{
		"company":    company,
		"fleet_size": fleetSize,
		"fail_rate":  failRate,
		"port":       port,
	}).Info("Starting fleet API mock")
	log.Infof("Point FLEETIO_API_URL and GEOTAB_API_URL at http://localhost:%d/api/v1", port)

	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
		log.WithError(err).Fatal("Mock server failed")
	}
}
