package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// FleetioConfig holds the credentials for the Fleetio issue-tracker API.
type FleetioConfig struct {
	APIKey       string
	AccountToken string
	BaseURL      string
}

// Configured reports whether the full credential set is present. A partial
// set disables the integration entirely; the adapter is never attempted
// with defaults.
func (c FleetioConfig) Configured() bool {
	return c.APIKey != "" && c.AccountToken != ""
}

// GeotabConfig holds the credentials for the Geotab telematics API.
type GeotabConfig struct {
	Username string
	Password string
	Database string
	BaseURL  string
}

// Configured reports whether the full credential set is present.
func (c GeotabConfig) Configured() bool {
	return c.Username != "" && c.Password != "" && c.Database != ""
}

// ServerConfig holds the HTTP server tuning knobs.
type ServerConfig struct {
	Port              int     `yaml:"port"`
	RateLimitPerSec   float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst    int     `yaml:"rate_limit_burst"`
	SessionTTLMinutes int     `yaml:"session_ttl_minutes"`

	SessionTTL time.Duration `yaml:"-"`
}

// Config is the single configuration value constructed at startup and
// passed down explicitly. Adapter code never reads the environment itself.
type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Companies []models.Company `yaml:"companies"`

	Fleetio          FleetioConfig `yaml:"-"`
	Geotab           GeotabConfig  `yaml:"-"`
	GoogleMapsAPIKey string        `yaml:"-"`

	JWTSecret    string        `yaml:"-"`
	JWTExpiry    time.Duration `yaml:"-"`
	DemoPassword string        `yaml:"-"`
}

// DefaultFleetioBaseURL is the production Fleetio REST endpoint.
const DefaultFleetioBaseURL = "https://secure.fleetio.com/api/v1"

// DefaultGeotabBaseURL is the production Geotab RPC endpoint.
const DefaultGeotabBaseURL = "https://my.geotab.com/api/v1"

func defaultCompanies() []models.Company {
	return []models.Company{
		{Key: "Nordik", Name: "Nordik Windows Inc", VehicleCount: 25},
		{Key: "NWGTA", Name: "NWGTA", VehicleCount: 15},
		{Key: "Verdun", Name: "Verdun", VehicleCount: 35},
		{Key: "Lipton", Name: "Lipton", VehicleCount: 10},
	}
}

// Load builds the configuration from an optional YAML file at path plus the
// environment. An empty path or a missing file falls back to defaults; env
// values always win for credentials and secrets.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              8080,
			RateLimitPerSec:   20,
			RateLimitBurst:    40,
			SessionTTLMinutes: 60,
		},
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to open config file: %w", err)
			}
		} else {
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if len(cfg.Companies) == 0 {
		cfg.Companies = defaultCompanies()
	}
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 20
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 40
	}
	if cfg.Server.SessionTTLMinutes <= 0 {
		cfg.Server.SessionTTLMinutes = 60
	}
	cfg.Server.SessionTTL = time.Duration(cfg.Server.SessionTTLMinutes) * time.Minute

	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}

	cfg.Fleetio = FleetioConfig{
		APIKey:       os.Getenv("FLEETIO_API_KEY"),
		AccountToken: os.Getenv("FLEETIO_ACCOUNT_TOKEN"),
		BaseURL:      envOr("FLEETIO_API_URL", DefaultFleetioBaseURL),
	}
	cfg.Geotab = GeotabConfig{
		Username: os.Getenv("GEOTAB_USER"),
		Password: os.Getenv("GEOTAB_PASSWORD"),
		Database: os.Getenv("GEOTAB_DATABASE"),
		BaseURL:  envOr("GEOTAB_API_URL", DefaultGeotabBaseURL),
	}
	cfg.GoogleMapsAPIKey = os.Getenv("GOOGLE_MAPS_API_KEY")

	cfg.JWTSecret = envOr("JWT_SECRET", "default-secret-key-change-in-production")
	cfg.JWTExpiry = 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.JWTExpiry = parsed
		}
	}
	cfg.DemoPassword = envOr("DEMO_PASSWORD", "fleet-demo")

	return cfg, nil
}

// CompanyByKey looks up a configured company.
func (c *Config) CompanyByKey(key string) (models.Company, bool) {
	for _, co := range c.Companies {
		if co.Key == key {
			return co, true
		}
	}
	return models.Company{}, false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
