// Package config resolves runtime settings from defaults, an optional TOML or
// YAML file and SCHEDULEAI_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const DefaultGenerationDelay = 2000 * time.Millisecond

// Apply policies decide what a successful generation does to the event list.
const (
	ApplyNone    = "none"
	ApplyAppend  = "append"
	ApplyReplace = "replace"
)

type RuntimeConfig struct {
	StateDBPath     string   `toml:"state_db" yaml:"state_db"`
	Ephemeral       bool     `toml:"ephemeral" yaml:"ephemeral"`
	LogFile         string   `toml:"log_file" yaml:"log_file"`
	LogLevel        string   `toml:"log_level" yaml:"log_level"`
	StartPath       string   `toml:"start_path" yaml:"start_path"`
	ForceDark       bool     `toml:"force_dark" yaml:"force_dark"`
	GenerationDelay Duration `toml:"generation_delay" yaml:"generation_delay"`
	ApplyPolicy     string   `toml:"apply_policy" yaml:"apply_policy"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StateDBPath:     filepath.Join(".scheduleai", "state.db"),
		LogFile:         filepath.Join(".scheduleai", "scheduleai.log"),
		LogLevel:        "info",
		StartPath:       "/",
		GenerationDelay: Duration{DefaultGenerationDelay},
		ApplyPolicy:     ApplyNone,
	}
}

// LoadFile overlays the file at path onto base. A missing file is not an
// error; the base is returned normalized.
func LoadFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		base.Normalize()
		return base, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			base.Normalize()
			return base, nil
		}
		return RuntimeConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(f, base)
	case ".yaml", ".yml":
		return LoadYAML(f, base)
	default:
		return RuntimeConfig{}, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

func LoadTOML(r io.Reader, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("decode toml config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

func LoadYAML(r io.Reader, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return RuntimeConfig{}, fmt.Errorf("decode yaml config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("SCHEDULEAI_STATE_DB"); ok {
		cfg.StateDBPath = v
	}
	if v, ok := getEnvBool("SCHEDULEAI_EPHEMERAL"); ok {
		cfg.Ephemeral = v
	}
	if v, ok := getEnvString("SCHEDULEAI_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("SCHEDULEAI_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("SCHEDULEAI_START_PATH"); ok {
		cfg.StartPath = v
	}
	if v, ok := getEnvBool("SCHEDULEAI_FORCE_DARK"); ok {
		cfg.ForceDark = v
	}
	if v, ok := getEnvDuration("SCHEDULEAI_GENERATION_DELAY"); ok {
		cfg.GenerationDelay = Duration{v}
	}
	if v, ok := getEnvString("SCHEDULEAI_APPLY_POLICY"); ok {
		cfg.ApplyPolicy = v
	}
	cfg.Normalize()
	return cfg
}

// Normalize fills zero values with defaults.
func (c *RuntimeConfig) Normalize() {
	def := DefaultRuntimeConfig()
	if strings.TrimSpace(c.StartPath) == "" {
		c.StartPath = def.StartPath
	}
	if !strings.HasPrefix(c.StartPath, "/") {
		c.StartPath = "/" + c.StartPath
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = def.LogLevel
	}
	if c.GenerationDelay.Duration <= 0 {
		c.GenerationDelay = def.GenerationDelay
	}
	c.ApplyPolicy = strings.ToLower(strings.TrimSpace(c.ApplyPolicy))
	if c.ApplyPolicy == "" {
		c.ApplyPolicy = def.ApplyPolicy
	}
	if strings.TrimSpace(c.StateDBPath) == "" {
		c.StateDBPath = def.StateDBPath
	}
}

func (c RuntimeConfig) Validate() error {
	switch c.ApplyPolicy {
	case ApplyNone, ApplyAppend, ApplyReplace:
	default:
		return fmt.Errorf("apply_policy must be one of none, append, replace; got %q", c.ApplyPolicy)
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

// getEnvDuration accepts Go duration strings or a bare millisecond count.
func getEnvDuration(name string) (time.Duration, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		if ms <= 0 {
			return 0, false
		}
		return time.Duration(ms) * time.Millisecond, true
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
