package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/config"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

func geotabTestClient(baseURL string) *GeotabClient {
	return NewGeotabClient(config.GeotabConfig{
		Username: "test-user",
		Password: "test-pass",
		Database: "test-db",
		BaseURL:  baseURL,
	})
}

func TestFetchDeviceStatus_MapsDevicesToPatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req geotabRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Get", req.Method)
		assert.Equal(t, "DeviceStatusInfo", req.Params.TypeName)
		assert.Equal(t, "test-db", req.Params.Credentials.Database)
		assert.Equal(t, "test-user", req.Params.Credentials.UserName)

		w.Write([]byte(`{"result": [
			{"device": {"vin": "VINNO0001"}, "latitude": 45.1, "longitude": -75.2, "isDriving": true},
			{"device": {"vin": "VINNO0002"}, "latitude": 45.3, "longitude": -75.4, "isDriving": false}
		]}`))
	}))
	defer server.Close()

	patches, err := geotabTestClient(server.URL).FetchDeviceStatus(context.Background())
	assert.NoError(t, err)
	assert.Len(t, patches, 2)

	assert.Equal(t, "VINNO0001", patches[0].VIN)
	assert.Equal(t, models.VehicleActive, patches[0].Status)
	assert.Equal(t, 45.1, patches[0].Location.Lat)
	assert.Equal(t, -75.2, patches[0].Location.Lng)

	assert.Equal(t, "VINNO0002", patches[1].VIN)
	assert.Equal(t, models.VehicleIdle, patches[1].Status)
}

func TestFetchDeviceStatus_ErrorFieldDiscardsResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Error and partial result in the same 2xx body: the call fails
		// and nothing from the result is used.
		w.Write([]byte(`{
			"result": [{"device": {"vin": "VINNO0001"}, "latitude": 45.1, "longitude": -75.2, "isDriving": true}],
			"error": {"message": "InvalidUserException"}
		}`))
	}))
	defer server.Close()

	patches, err := geotabTestClient(server.URL).FetchDeviceStatus(context.Background())
	assert.Error(t, err)
	assert.Nil(t, patches)

	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "Geotab", fetchErr.Provider)
	assert.Contains(t, fetchErr.Message, "InvalidUserException")
}

func TestFetchDeviceStatus_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := geotabTestClient(server.URL).FetchDeviceStatus(context.Background())
	assert.Error(t, err)

	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
}

func TestFetchDeviceStatus_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": []}`))
	}))
	defer server.Close()

	patches, err := geotabTestClient(server.URL).FetchDeviceStatus(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, patches)
	assert.Empty(t, patches)
}

func TestFetchError_Format(t *testing.T) {
	withCode := &FetchError{Provider: "Fleetio", StatusCode: 401, Message: "bad credentials"}
	assert.Equal(t, "Fleetio API error (401): bad credentials", withCode.Error())

	withoutCode := &FetchError{Provider: "Geotab", Message: "connection refused"}
	assert.Equal(t, "Geotab API error: connection refused", withoutCode.Error())
}
