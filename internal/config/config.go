// Package config provides runtime configuration for the panel router tools.
package config

import (
	"github.com/spf13/viper"

	"panel-router/internal/enclosure"
)

// Config holds tool defaults for routing and placement. Values come from
// .panelrouter.yaml, PANELROUTER_* env vars, and CLI flags.
type Config struct {
	Resolution    float64 `mapstructure:"resolution"`     // grid cell size, mm
	Clearance     float64 `mapstructure:"clearance"`      // obstacle padding, mm
	ModuleWidth   float64 `mapstructure:"module_width"`   // rail module pitch, mm
	SnapTolerance float64 `mapstructure:"snap_tolerance"` // rail snap distance, mm
	SearchLimit   int     `mapstructure:"search_limit"`   // max A* node expansions
	Verbose       bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("resolution", 10.0)
	viper.SetDefault("clearance", 5.0)
	viper.SetDefault("module_width", enclosure.ModuleWidthMM)
	viper.SetDefault("snap_tolerance", 30.0)
	viper.SetDefault("search_limit", 200000)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
