package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"fleet-maintenance-backend/internal/schedule"
)

// Config represents the overall application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Push        PushConfig        `yaml:"push"`
	WorkerPool  WorkerPoolConfig  `yaml:"worker_pool"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
	Costs       CostConfig        `yaml:"costs"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// MaintenanceConfig carries per-equipment threshold overrides, merged over
// the built-in schedule.
type MaintenanceConfig struct {
	Schedule map[string]schedule.Thresholds `yaml:"schedule"`
}

// CostConfig holds the rates for the financial projection endpoints.
type CostConfig struct {
	OperatingRates   map[string]float64 `yaml:"operating_rates"`
	InspectionCost   float64            `yaml:"inspection_cost"`
	MinorServiceCost float64            `yaml:"minor_service_cost"`
	MajorServiceCost float64            `yaml:"major_service_cost"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}

	if cfg.Costs.InspectionCost <= 0 {
		cfg.Costs.InspectionCost = 1000
	}
	if cfg.Costs.MinorServiceCost <= 0 {
		cfg.Costs.MinorServiceCost = 5000
	}
	if cfg.Costs.MajorServiceCost <= 0 {
		cfg.Costs.MajorServiceCost = 15000
	}
	if len(cfg.Costs.OperatingRates) == 0 {
		cfg.Costs.OperatingRates = defaultOperatingRates()
	}
}

func defaultOperatingRates() map[string]float64 {
	return map[string]float64{
		"Main Engine":      150,
		"Auxiliary Engine": 100,
		"Generator":        80,
		"Boiler":           60,
		"Pump":             40,
		"Compressor":       50,
		"Crane":            70,
		"Propeller":        90,
	}
}

// MaintenanceSchedule returns the built-in schedule with any configured
// overrides applied on top.
func (c *Config) MaintenanceSchedule() schedule.Schedule {
	s := schedule.Default()
	for name, thresholds := range c.Maintenance.Schedule {
		s[name] = thresholds
	}
	return s
}

// CostForTier returns the configured one-off maintenance cost for a tier.
func (c *CostConfig) CostForTier(tier schedule.Tier) float64 {
	switch tier {
	case schedule.TierMajor:
		return c.MajorServiceCost
	case schedule.TierMinor:
		return c.MinorServiceCost
	case schedule.TierInspection:
		return c.InspectionCost
	}
	return 0
}
