// Package config loads the CLI settings from a TOML file and ISO20022_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/reoring/iso20022/sample"
)

// DefaultPath is read when no --config flag is given. A missing default file
// is not an error.
const DefaultPath = "iso20022.toml"

// Config holds the effective settings.
type Config struct {
	Language   string
	LogLevel   string
	Rules      bool
	StrictJSON bool
	MaxBytes   int64
	Journal    string
	Sample     sample.Config
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Language: "en",
		LogLevel: "info",
		Sample:   sample.Defaults(),
	}
}

type fileConfig struct {
	Language   string        `toml:"language"`
	LogLevel   string        `toml:"log_level"`
	Rules      bool          `toml:"rules"`
	StrictJSON bool          `toml:"strict_json"`
	MaxBytes   int64         `toml:"max_bytes"`
	Journal    string        `toml:"journal"`
	Sample     sample.Config `toml:"sample"`
}

// Load reads path over Default and then applies the environment. An empty
// path reads DefaultPath if it exists.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	switch {
	case err == nil:
		apply(&cfg, raw, meta)
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Sample.Check(); err != nil {
		return Config{}, fmt.Errorf("load config: sample: %w", err)
	}
	return cfg, nil
}

func apply(cfg *Config, raw fileConfig, meta toml.MetaData) {
	if meta.IsDefined("language") {
		cfg.Language = strings.TrimSpace(raw.Language)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("rules") {
		cfg.Rules = raw.Rules
	}
	if meta.IsDefined("strict_json") {
		cfg.StrictJSON = raw.StrictJSON
	}
	if meta.IsDefined("max_bytes") {
		cfg.MaxBytes = raw.MaxBytes
	}
	if meta.IsDefined("journal") {
		cfg.Journal = strings.TrimSpace(raw.Journal)
	}
	if meta.IsDefined("sample") {
		cfg.Sample = raw.Sample.Merge(cfg.Sample)
	}
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("ISO20022_LANG"); ok {
		cfg.Language = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("ISO20022_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("ISO20022_JOURNAL"); ok {
		cfg.Journal = strings.TrimSpace(v)
	}
	for name, dst := range map[string]*bool{
		"ISO20022_RULES":       &cfg.Rules,
		"ISO20022_STRICT_JSON": &cfg.StrictJSON,
	} {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		*dst = b
	}
	if v, ok := os.LookupEnv("ISO20022_MAX_BYTES"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("parse ISO20022_MAX_BYTES: %w", err)
		}
		cfg.MaxBytes = n
	}
	return nil
}
