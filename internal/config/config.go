package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/coordex/internal/domain/category"
	"github.com/kailas-cloud/coordex/pkg/geo"
)

// Config holds the coordex API configuration.
type Config struct {
	HTTP       HTTPConfig        `yaml:"http"`
	Database   DatabaseConfig    `yaml:"database"`
	Auth       AuthConfig        `yaml:"auth"`
	Storage    StorageConfig     `yaml:"storage"`
	Geometry   GeometryConfig    `yaml:"geometry"`
	Locations  LocationsConfig   `yaml:"locations"`
	Categories map[string]string `yaml:"categories"` // name -> parent ("" for a root)
	Logging    LoggingConfig     `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// GeometryConfig holds the numeric thresholds of the coordinate core.
type GeometryConfig struct {
	EpsilonZero        float64 `yaml:"epsilon_zero"`
	EpsilonSignificant float64 `yaml:"epsilon_significant"`
	EarthRadiusMeters  float64 `yaml:"earth_radius_m"` // used for lat/lon input
}

// Tolerance converts the thresholds into a geo.Tolerance.
func (g GeometryConfig) Tolerance() geo.Tolerance {
	return geo.Tolerance{Zero: g.EpsilonZero, Significant: g.EpsilonSignificant}
}

// LocationsConfig holds pagination and query limits for stored locations.
type LocationsConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
	DefaultNearby   int `yaml:"default_nearby"`
	MaxNearby       int `yaml:"max_nearby"`
	MaxBatchSize    int `yaml:"max_batch_size"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "coordex:"
	}
	if c.Geometry.EpsilonZero == 0 {
		c.Geometry.EpsilonZero = geo.EpsilonZero
	}
	if c.Geometry.EpsilonSignificant == 0 {
		c.Geometry.EpsilonSignificant = geo.EpsilonSignificant
	}
	if c.Geometry.EarthRadiusMeters == 0 {
		c.Geometry.EarthRadiusMeters = geo.EarthRadiusMeters
	}
	if c.Locations.DefaultPageSize <= 0 {
		c.Locations.DefaultPageSize = 20
	}
	if c.Locations.MaxPageSize <= 0 {
		c.Locations.MaxPageSize = 100
	}
	if c.Locations.DefaultNearby <= 0 {
		c.Locations.DefaultNearby = 10
	}
	if c.Locations.MaxNearby <= 0 {
		c.Locations.MaxNearby = 100
	}
	if c.Locations.MaxBatchSize <= 0 {
		c.Locations.MaxBatchSize = 100
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	if err := c.Geometry.Tolerance().Validate(); err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	if !(c.Geometry.EarthRadiusMeters > 0) {
		return fmt.Errorf("geometry.earth_radius_m must be positive, got %g", c.Geometry.EarthRadiusMeters)
	}
	if c.Locations.DefaultPageSize > c.Locations.MaxPageSize {
		return fmt.Errorf("locations.default_page_size (%d) exceeds max_page_size (%d)",
			c.Locations.DefaultPageSize, c.Locations.MaxPageSize)
	}
	if c.Locations.DefaultNearby > c.Locations.MaxNearby {
		return fmt.Errorf("locations.default_nearby (%d) exceeds max_nearby (%d)",
			c.Locations.DefaultNearby, c.Locations.MaxNearby)
	}
	if _, err := category.NewRegistry(c.Categories); err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
