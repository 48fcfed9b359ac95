// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

// Package config loads texconv settings from flags, environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/woozymasta/bcn"
	"github.com/woozymasta/tex"
	"github.com/woozymasta/tex/internal/logger"
)

// EnvPrefix prefixes environment overrides, e.g. TEXCONV_LOG_LEVEL=DEBUG.
const EnvPrefix = "TEXCONV"

// Config is the resolved texconv configuration.
type Config struct {
	Log     logger.Config `mapstructure:"log"`
	Workers int           `mapstructure:"workers"`
	DDS     DDSConfig     `mapstructure:"dds"`
	EDDS    EDDSConfig    `mapstructure:"edds"`
}

// DDSConfig controls PNG to DDS encoding.
type DDSConfig struct {
	Format  string `mapstructure:"format"`
	MipMaps int    `mapstructure:"mipmaps"`
	Quality string `mapstructure:"quality"` // default, fast
}

// EDDSConfig controls EDDS repackaging.
type EDDSConfig struct {
	Compress bool `mapstructure:"compress"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("dds.format", "bgra8")
	v.SetDefault("dds.mipmaps", 0)
	v.SetDefault("dds.quality", "default")
	v.SetDefault("edds.compress", true)
}

// BindFlags maps command line flags onto config keys. Flags missing from
// fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, flag := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", flag, err)
		}
	}
	return nil
}

// Load resolves configuration with precedence flags > environment > file > defaults.
// An empty configPath skips the file; a missing explicit file is an error.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges and names.
func Validate(cfg *Config) error {
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.DDS.MipMaps < 0 {
		return fmt.Errorf("dds.mipmaps must not be negative, got %d", cfg.DDS.MipMaps)
	}
	if _, err := tex.ParseFormat(cfg.DDS.Format); err != nil {
		return fmt.Errorf("dds.format: %w", err)
	}
	switch strings.ToLower(cfg.DDS.Quality) {
	case "", "default", "fast":
	default:
		return fmt.Errorf("dds.quality must be default or fast, got %q", cfg.DDS.Quality)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", cfg.Log.Format)
	}
	return nil
}

// WriteOptions converts the DDS section into encoder options.
func (c *Config) WriteOptions() (*tex.WriteOptions, error) {
	format, err := tex.ParseFormat(c.DDS.Format)
	if err != nil {
		return nil, err
	}

	opts := &tex.WriteOptions{Format: format, MaxMipMaps: c.DDS.MipMaps}
	if strings.EqualFold(c.DDS.Quality, "fast") {
		opts.EncodeOptions = &bcn.EncodeOptions{QualityLevel: bcn.QualityLevelFast}
	}
	return opts, nil
}

// EDDSOptions converts the EDDS section into repackaging options.
func (c *Config) EDDSOptions() *tex.EDDSOptions {
	return &tex.EDDSOptions{Compress: c.EDDS.Compress}
}
