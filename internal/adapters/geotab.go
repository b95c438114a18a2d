package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/config"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// GeotabClient fetches live device status from a Geotab-style telematics
// RPC endpoint and maps each device to a partial vehicle patch.
type GeotabClient struct {
	cfg    config.GeotabConfig
	client *http.Client
}

// NewGeotabClient creates a client for the given credential set.
func NewGeotabClient(cfg config.GeotabConfig) *GeotabClient {
	return &GeotabClient{cfg: cfg, client: newHTTPClient()}
}

type geotabRequest struct {
	Method string       `json:"method"`
	Params geotabParams `json:"params"`
}

type geotabParams struct {
	TypeName    string            `json:"typeName"`
	Credentials geotabCredentials `json:"credentials"`
}

type geotabCredentials struct {
	Database string `json:"database"`
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type geotabResponse struct {
	Result []geotabDeviceStatus `json:"result"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type geotabDeviceStatus struct {
	Device struct {
		VIN string `json:"vin"`
	} `json:"device"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsDriving bool    `json:"isDriving"`
}

// FetchDeviceStatus performs one Get/DeviceStatusInfo call and maps every
// reported device to a VehiclePatch. An error field in a 2xx response is a
// failure and discards the whole result (atomic per-call success).
func (c *GeotabClient) FetchDeviceStatus(ctx context.Context) ([]models.VehiclePatch, error) {
	payload, err := json.Marshal(geotabRequest{
		Method: "Get",
		Params: geotabParams{
			TypeName: "DeviceStatusInfo",
			Credentials: geotabCredentials{
				Database: c.cfg.Database,
				UserName: c.cfg.Username,
				Password: c.cfg.Password,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Provider: "Geotab", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Provider: "Geotab", StatusCode: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Provider: "Geotab", StatusCode: resp.StatusCode, Message: truncateBody(body)}
	}

	var decoded geotabResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &FetchError{Provider: "Geotab", StatusCode: resp.StatusCode, Message: "malformed payload: " + err.Error()}
	}
	if decoded.Error != nil {
		return nil, &FetchError{Provider: "Geotab", Message: decoded.Error.Message}
	}

	patches := make([]models.VehiclePatch, 0, len(decoded.Result))
	for _, device := range decoded.Result {
		status := models.VehicleIdle
		if device.IsDriving {
			status = models.VehicleActive
		}
		patches = append(patches, models.VehiclePatch{
			VIN:      device.Device.VIN,
			Location: models.Location{Lat: device.Latitude, Lng: device.Longitude},
			Status:   status,
		})
	}

	log.WithField("devices", len(patches)).Debug("Fetched device status from Geotab")

	return patches, nil
}
