// Package config loads the TOML-backed configuration shared by the
// map and serve CLI subcommands, following the teacher's pattern of a
// plain struct filled with defaults first and then decoded wholesale from
// a user file, whose fields replace the defaults they name.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Config holds every setting the CLI accepts, whether from a config
// file or overridden by flags.
type Config struct {
	Address        string   `toml:"address"`
	CacheDir       string   `toml:"cache_dir"`
	CORSOrigins    []string `toml:"cors_origins"`
	MetricsEnabled bool     `toml:"metrics_enabled"`

	WorldSeed string `toml:"world_seed"`
	WorldType string `toml:"world_type"`
}

// Default returns a Config with every field set to the value the CLI
// uses when neither a config file nor a flag overrides it.
func Default() Config {
	return Config{
		Address:        ":8080",
		CacheDir:       "",
		CORSOrigins:    nil,
		MetricsEnabled: true,
		WorldSeed:      "0",
		WorldType:      "DEFAULT",
	}
}

// Load reads and decodes a TOML file at path on top of Default(). A
// missing file is not an error; it simply leaves the defaults in place.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}
