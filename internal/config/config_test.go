package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 20.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 40, cfg.Server.RateLimitBurst)
	assert.Equal(t, time.Hour, cfg.Server.SessionTTL)
	assert.Len(t, cfg.Companies, 4)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "fleet-demo", cfg.DemoPassword)
	assert.False(t, cfg.Fleetio.Configured())
	assert.False(t, cfg.Geotab.Configured())
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("/no/such/config.yaml")
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
  rate_limit_per_sec: 5
  session_ttl_minutes: 10
companies:
  - key: Acme
    name: Acme Corp
    vehicles: 12
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 10*time.Minute, cfg.Server.SessionTTL)
	assert.Len(t, cfg.Companies, 1)
	assert.Equal(t, "Acme", cfg.Companies[0].Key)
	assert.Equal(t, 12, cfg.Companies[0].VehicleCount)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("FLEETIO_API_KEY", "key")
	t.Setenv("FLEETIO_ACCOUNT_TOKEN", "account")
	t.Setenv("GEOTAB_USER", "user")
	t.Setenv("GEOTAB_PASSWORD", "pass")
	t.Setenv("GEOTAB_DATABASE", "db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "2h")

	cfg, err := Load("")
	assert.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.True(t, cfg.Fleetio.Configured())
	assert.Equal(t, DefaultFleetioBaseURL, cfg.Fleetio.BaseURL)
	assert.True(t, cfg.Geotab.Configured())
	assert.Equal(t, DefaultGeotabBaseURL, cfg.Geotab.BaseURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
}

func TestFleetioConfig_PartialCredentials(t *testing.T) {
	assert.False(t, FleetioConfig{APIKey: "key"}.Configured())
	assert.False(t, FleetioConfig{AccountToken: "account"}.Configured())
	assert.True(t, FleetioConfig{APIKey: "key", AccountToken: "account"}.Configured())
}

func TestGeotabConfig_PartialCredentials(t *testing.T) {
	assert.False(t, GeotabConfig{Username: "u", Password: "p"}.Configured())
	assert.True(t, GeotabConfig{Username: "u", Password: "p", Database: "d"}.Configured())
}

func TestCompanyByKey(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)

	company, ok := cfg.CompanyByKey("Nordik")
	assert.True(t, ok)
	assert.Equal(t, "Nordik Windows Inc", company.Name)
	assert.Equal(t, 25, company.VehicleCount)

	_, ok = cfg.CompanyByKey("Ghost")
	assert.False(t, ok)
}
