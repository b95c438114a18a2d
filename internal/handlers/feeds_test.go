package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

func TestFeedsHandler_Mail(t *testing.T) {
	_, registry := newTestStack(t)
	handler := NewFeedsHandler(registry, "")
	sess := registry.Create(models.User{Email: "alex.williams@example.com"})

	req := authedRequest(http.MethodGet, "/api/feeds/mail", nil, sess)
	w := httptest.NewRecorder()
	handler.Mail(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var messages []models.MailMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Len(t, messages, 4)
}

func TestFeedsHandler_Calendar(t *testing.T) {
	_, registry := newTestStack(t)
	handler := NewFeedsHandler(registry, "")
	sess := registry.Create(models.User{Email: "alex.williams@example.com"})

	req := authedRequest(http.MethodGet, "/api/feeds/calendar", nil, sess)
	w := httptest.NewRecorder()
	handler.Calendar(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var events []models.CalendarEvent
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Len(t, events, 4)
}

func TestFeedsHandler_MapMarkers(t *testing.T) {
	_, registry := newTestStack(t)
	handler := NewFeedsHandler(registry, "maps-key")
	sess := registry.Create(models.User{Email: "alex.williams@example.com"})
	assert.True(t, sess.SelectCompany(context.Background(), "Nordik"))

	req := authedRequest(http.MethodGet, "/api/map/markers", nil, sess)
	w := httptest.NewRecorder()
	handler.MapMarkers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		MapsConfigured bool        `json:"mapsConfigured"`
		Markers        []mapMarker `json:"markers"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.MapsConfigured)
	assert.Len(t, resp.Markers, 6)
	for _, m := range resp.Markers {
		assert.NotEmpty(t, m.VehicleID)
		assert.NotZero(t, m.Location.Lat)
	}
}

func TestFeedsHandler_MapMarkersWithoutKey(t *testing.T) {
	_, registry := newTestStack(t)
	handler := NewFeedsHandler(registry, "")
	sess := registry.Create(models.User{Email: "alex.williams@example.com"})

	req := authedRequest(http.MethodGet, "/api/map/markers", nil, sess)
	w := httptest.NewRecorder()
	handler.MapMarkers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		MapsConfigured bool        `json:"mapsConfigured"`
		Markers        []mapMarker `json:"markers"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.MapsConfigured)
	assert.Empty(t, resp.Markers)
}
