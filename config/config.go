package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the server settings, sourced from GEOREPORT_* environment
// variables with sensible defaults for local use.
type Config struct {
	Addr        string `mapstructure:"addr"`
	StaticDir   string `mapstructure:"static_dir"`
	AssetDir    string `mapstructure:"asset_dir"`
	RasterScale int    `mapstructure:"raster_scale"`
	LogLevel    string `mapstructure:"log_level"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GEOREPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8090")
	v.SetDefault("static_dir", "./static")
	v.SetDefault("asset_dir", "./static")
	v.SetDefault("raster_scale", 2)
	v.SetDefault("log_level", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.RasterScale < 1 || cfg.RasterScale > 4 {
		return Config{}, fmt.Errorf("raster_scale must be between 1 and 4, got %d", cfg.RasterScale)
	}
	return cfg, nil
}
