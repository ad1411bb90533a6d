// Package config loads the server configuration from an optional YAML file
// with environment variable overrides.
//
// The warehouse credential is supplied externally (env or file) and passed
// through to the driver untouched — the server never computes or stores
// credentials itself.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default configuration file name, looked up in the working directory.
const DefaultFile = "lakewise.yaml"

// Environment variable names. Env always wins over the file.
const (
	EnvWarehouseDriver = "LAKEWISE_WAREHOUSE_DRIVER"
	EnvWarehouseDSN    = "LAKEWISE_WAREHOUSE_DSN"
	EnvWarehouseToken  = "LAKEWISE_WAREHOUSE_TOKEN"
)

// Warehouse holds the analytical backend connection parameters.
type Warehouse struct {
	// Driver is a database/sql driver name: "pgx" (default) or "sqlite".
	Driver string `yaml:"driver"`
	// DSN is the connection string. Empty means no warehouse is configured;
	// browse tools still work, analysis tools report the error per call.
	DSN string `yaml:"dsn"`
	// Token is an externally supplied credential referenced from the DSN
	// via ${token}. It is substituted, never logged.
	Token string `yaml:"token"`
}

// Config is the full server configuration.
type Config struct {
	Warehouse Warehouse `yaml:"warehouse"`
}

// Load reads path (DefaultFile when empty) if it exists, then applies
// environment overrides. A missing file is not an error — env-only
// configuration is the common deployment.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultFile
	}

	cfg := Config{Warehouse: Warehouse{Driver: "pgx"}}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env
	case err != nil:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		if cfg.Warehouse.Driver == "" {
			cfg.Warehouse.Driver = "pgx"
		}
	}

	if v := os.Getenv(EnvWarehouseDriver); v != "" {
		cfg.Warehouse.Driver = v
	}
	if v := os.Getenv(EnvWarehouseDSN); v != "" {
		cfg.Warehouse.DSN = v
	}
	if v := os.Getenv(EnvWarehouseToken); v != "" {
		cfg.Warehouse.Token = v
	}

	return cfg, nil
}

// ResolvedDSN returns the DSN with the ${token} placeholder replaced by
// the configured credential.
func (c Config) ResolvedDSN() string {
	return expandToken(c.Warehouse.DSN, c.Warehouse.Token)
}

func expandToken(dsn, token string) string {
	return os.Expand(dsn, func(name string) string {
		if name == "token" {
			return token
		}
		// Unknown placeholders are preserved as written.
		return "${" + name + "}"
	})
}
