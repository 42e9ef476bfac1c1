package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rathijitpapon/snowflakeid/pkg/snowflake"
	"gopkg.in/yaml.v3"
)

// Config is the raw generator configuration loaded from file/env/flags.
// Zero bit widths mean "derive from the other"; a nil MachineID means the
// generator's default interface-based derivation.
type Config struct {
	MachineIDBits int    `json:"machineIdBits" yaml:"machineIdBits"`
	SequenceBits  int    `json:"sequenceBits" yaml:"sequenceBits"`
	MachineID     *int64 `json:"machineId,omitempty" yaml:"machineId,omitempty"`
	Epoch         string `json:"epoch,omitempty" yaml:"epoch,omitempty"`
	LogLevel      string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	LogFormat     string `json:"logFormat,omitempty" yaml:"logFormat,omitempty"`
}

// Default returns built-in defaults: the 10/12 bit split and the
// 2024-01-01 epoch.
func Default() Config {
	return Config{
		MachineIDBits: 10,
		SequenceBits:  12,
		Epoch:         snowflake.DefaultEpoch.Format(time.RFC3339),
	}
}

// Load reads configuration from a JSON or YAML file (by extension) on top of
// defaults. Unknown keys are rejected. An empty path returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// FromEnv overlays SNOWID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("SNOWID_MACHINE_ID_BITS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MachineIDBits = n
		}
	}
	if v := os.Getenv("SNOWID_SEQUENCE_BITS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SequenceBits = n
		}
	}
	if v := os.Getenv("SNOWID_MACHINE_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MachineID = &n
		}
	}
	if v := os.Getenv("SNOWID_EPOCH"); v != "" {
		cfg.Epoch = v
	}
	if v := os.Getenv("SNOWID_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SNOWID_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// Options translates the raw config into snowflake.Options. When exactly one
// bit width is set, the other is derived so the pair fills the 22-bit
// payload. Invariant violations are left to snowflake.New.
func (c Config) Options() (snowflake.Options, error) {
	opts := snowflake.Options{
		MachineIDBits: c.MachineIDBits,
		SequenceBits:  c.SequenceBits,
	}
	if opts.MachineIDBits == 0 && opts.SequenceBits > 0 {
		opts.MachineIDBits = snowflake.PayloadBits - opts.SequenceBits
	}
	if opts.SequenceBits == 0 && opts.MachineIDBits > 0 {
		opts.SequenceBits = snowflake.PayloadBits - opts.MachineIDBits
	}
	if c.MachineID != nil {
		opts.MachineID = snowflake.FixedMachineID(*c.MachineID)
	}
	if c.Epoch != "" {
		epoch, err := ParseTime(c.Epoch)
		if err != nil {
			return snowflake.Options{}, fmt.Errorf("config: epoch: %w", err)
		}
		opts.Epoch = epoch
	}
	return opts, nil
}

// ParseTime parses an RFC3339 timestamp or a Unix-millisecond integer.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%q is neither RFC3339 nor unix milliseconds", s)
}
