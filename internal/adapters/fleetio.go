package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/config"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// FleetioClient fetches open issues from a Fleetio-style issue tracker and
// maps them to maintenance tasks.
type FleetioClient struct {
	cfg    config.FleetioConfig
	client *http.Client
}

// NewFleetioClient creates a client for the given credential set.
func NewFleetioClient(cfg config.FleetioConfig) *FleetioClient {
	return &FleetioClient{cfg: cfg, client: newHTTPClient()}
}

type fleetioIssue struct {
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

// FetchOpenIssues lists open issues and maps each to a MaintenanceTask,
// resolving the owning vehicle through a VIN lookup built from
// knownVehicles. Issues whose VIN matches no known vehicle are dropped
// silently. Zero matching issues is a valid, empty result.
func (c *FleetioClient) FetchOpenIssues(ctx context.Context, knownVehicles []models.Vehicle) ([]models.MaintenanceTask, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/issues?status=open", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token token="+c.cfg.APIKey)
	req.Header.Set("Account-Token", c.cfg.AccountToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Provider: "Fleetio", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Provider: "Fleetio", StatusCode: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Provider: "Fleetio", StatusCode: resp.StatusCode, Message: truncateBody(body)}
	}

	var issues []fleetioIssue
	if err := json.Unmarshal(body, &issues); err != nil {
		return nil, &FetchError{Provider: "Fleetio", StatusCode: resp.StatusCode, Message: "malformed payload: " + err.Error()}
	}

	vinToID := make(map[string]string, len(knownVehicles))
	for _, v := range knownVehicles {
		vinToID[v.VIN] = v.ID
	}

	now := time.Now()
	tasks := make([]models.MaintenanceTask, 0, len(issues))
	for _, issue := range issues {
		vehicleID, ok := vinToID[issue.Vehicle.VIN]
		if !ok {
			continue
		}

		status := models.TaskUpcoming
		dueDate := issue.DueDate
		if dueDate == "" {
			dueDate = now.Format(models.DateLayout)
		} else if due, err := time.Parse(models.DateLayout, dueDate); err == nil && due.Before(now) {
			status = models.TaskOverdue
		}

		task := models.MaintenanceTask{
			ID:          fmt.Sprintf("fleetio-%d", issue.ID),
			VehicleID:   vehicleID,
			VehicleName: issue.VehicleName,
			Task:        issue.Summary,
			DueDate:     dueDate,
			Status:      status,
			Notes:       issue.Description,
		}
		if issue.EstimatedCostInCents != nil {
			cost := float64(*issue.EstimatedCostInCents) / 100
			task.Cost = &cost
		}
		tasks = append(tasks, task)
	}

	log.WithFields(log.Fields{
		"open_issues": len(issues),
		"mapped":      len(tasks),
	}).Debug("Fetched issues from Fleetio")

	return tasks, nil
}
