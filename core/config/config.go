// File: config.go
// Title: Configuration Loading
// Description: Typed configuration loaded from TOML or YAML files with an
//              environment variable overlay and compiled defaults.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Typed sections instead of a generic key/value map,
//                       environment overlay through koanf

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	ruerror "github.com/bastawesy/reactorutils/core/error"
)

// EnvPrefix is the prefix of environment variables read by Load.
// REACTORUTILS_LOG_LEVEL sets log.level, REACTORUTILS_I18N_DEFAULT_LOCALE
// sets i18n.default_locale.
const EnvPrefix = "REACTORUTILS_"

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the settings of the utility layer
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general" koanf:"general"`
	I18n    I18nConfig    `toml:"i18n" yaml:"i18n" koanf:"i18n"`
	Log     LogConfig     `toml:"log" yaml:"log" koanf:"log"`
	HTTP    HTTPConfig    `toml:"http" yaml:"http" koanf:"http"`
}

// GeneralConfig holds application wide settings
type GeneralConfig struct {
	AppName string `toml:"app_name" yaml:"app_name" koanf:"app_name"`
	// Locale used for validation messages
	Locale string `toml:"locale" yaml:"locale" koanf:"locale"`
}

// I18nConfig describes where message bundles come from.
// An empty Dir selects the embedded default bundle.
type I18nConfig struct {
	Dir           string `toml:"dir" yaml:"dir" koanf:"dir"`
	BaseName      string `toml:"base_name" yaml:"base_name" koanf:"base_name"`
	DefaultLocale string `toml:"default_locale" yaml:"default_locale" koanf:"default_locale"`
	Format        string `toml:"format" yaml:"format" koanf:"format"`
	Watch         bool   `toml:"watch" yaml:"watch" koanf:"watch"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" koanf:"level"`
	Format string `toml:"format" yaml:"format" koanf:"format"`
	// "stderr", "stdout" or a file path
	Output string `toml:"output" yaml:"output" koanf:"output"`
}

// HTTPConfig holds settings for outgoing requests
type HTTPConfig struct {
	Timeout         Duration `toml:"timeout" yaml:"timeout" koanf:"timeout"`
	ContentType     string   `toml:"content_type" yaml:"content_type" koanf:"content_type"`
	RequestIDHeader string   `toml:"request_id_header" yaml:"request_id_header" koanf:"request_id_header"`
}

// Load reads path (if not empty), overlays environment variables and
// validates the result. Missing sections keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, ruerror.New("config file not found").
					WithCode(ruerror.CodeMissingConfig).
					WithOperation("config.Load").
					WithDetail("filePath", path)
			}
			return nil, ruerror.Wrap(err, "failed to read config file").
				WithCode(ruerror.CodeConfigError).
				WithOperation("config.Load").
				WithDetail("filePath", path)
		}

		if err := decode(content, detectFormat(path), cfg); err != nil {
			return nil, ruerror.Wrap(err, "failed to parse config file").
				WithCode(ruerror.CodeInvalidConfig).
				WithOperation("config.Load").
				WithDetail("filePath", path)
		}
	}

	if err := overlayEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromString parses content on top of the defaults without reading
// the environment
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg := Default()
	if err := decode([]byte(content), format, cfg); err != nil {
		return nil, ruerror.Wrap(err, "failed to parse config").
			WithCode(ruerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(content, cfg)
	default:
		_, err := toml.Decode(string(content), cfg)
		return err
	}
}

// overlayEnv applies REACTORUTILS_* variables. The first "_" after the
// prefix separates section and key.
func overlayEnv(cfg *Config) error {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return ruerror.Wrap(err, "failed to load environment variables").
			WithCode(ruerror.CodeConfigError).
			WithOperation("config.overlayEnv").
			WithDetail("prefix", EnvPrefix)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return ruerror.Wrap(err, "failed to apply environment variables").
			WithCode(ruerror.CodeInvalidConfig).
			WithOperation("config.overlayEnv").
			WithDetail("prefix", EnvPrefix)
	}
	return nil
}
