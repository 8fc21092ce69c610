package evalconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"xdao.co/varbin/function"
)

// Config describes what a varbind daemon serves and how.
//
// Files ending in .yaml or .yml are parsed as YAML; anything else as JSON.
//
// Example:
//
//	{
//	  "listen": "127.0.0.1:7777",
//	  "log_level": "info",
//	  "categories": ["codec", "digest"],
//	  "functions": ["to_hex", "from_hex", "sha256"]
//	}
//
// An empty Categories or Functions list places no restriction. When both are
// set a function must satisfy both.
type Config struct {
	Listen      string   `json:"listen,omitempty" yaml:"listen,omitempty"`
	MaxMsgBytes int      `json:"max_msg_bytes,omitempty" yaml:"max_msg_bytes,omitempty"`
	LogLevel    string   `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Categories  []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Functions   []string `json:"functions,omitempty" yaml:"functions,omitempty"`
}

func LoadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, errors.New("evalconfig: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("evalconfig: %s: %w", path, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("evalconfig: %s: %w", path, err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks the config against the default catalog.
func (c Config) Validate() error {
	if c.MaxMsgBytes < 0 {
		return fmt.Errorf("evalconfig: max_msg_bytes must be >= 0, got %d", c.MaxMsgBytes)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := function.ParseCategories(c.Categories); err != nil {
		return fmt.Errorf("evalconfig: %w", err)
	}
	seen := make(map[string]struct{}, len(c.Functions))
	for _, name := range c.Functions {
		if len(function.Default().Overloads(name)) == 0 {
			return fmt.Errorf("evalconfig: unknown function %q", name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("evalconfig: duplicate function %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Catalog returns the subset of base this config allows.
func (c Config) Catalog(base *function.Catalog) (*function.Catalog, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	cats, _ := function.ParseCategories(c.Categories)
	allowed := make(map[string]struct{}, len(c.Functions))
	for _, name := range c.Functions {
		allowed[name] = struct{}{}
	}
	return base.Filter(func(s function.Scalar) bool {
		if s.Category&cats == 0 {
			return false
		}
		if len(allowed) == 0 {
			return true
		}
		_, ok := allowed[s.Name]
		return ok
	}), nil
}

// Level returns the configured slog level, defaulting to info.
func (c Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel parses debug|info|warn|error. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("evalconfig: invalid log_level %q", s)
	}
}
