package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// CatalogURL is the catalog service base URL.
	CatalogURL string `yaml:"catalog_url"`
	// UpstreamTimeout bounds every catalog request.
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development.
func Load() Config {
	return Config{
		CatalogURL:      getenv("CATALOG_URL", "http://localhost:8000"),
		UpstreamTimeout: parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),
	}
}

// LoadFile overlays a YAML file on top of Load's result. Fields absent from
// the file keep their env/default values.
func LoadFile(path string) (Config, error) {
	cfg := Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var file struct {
		CatalogURL      string `yaml:"catalog_url"`
		UpstreamTimeout string `yaml:"upstream_timeout"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	if file.CatalogURL != "" {
		cfg.CatalogURL = file.CatalogURL
	}
	if file.UpstreamTimeout != "" {
		cfg.UpstreamTimeout = parseDuration(file.UpstreamTimeout, cfg.UpstreamTimeout)
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
