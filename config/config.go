// Package config loads the per-project build configuration (spec §6.5):
// garbage-collector enablement and an optional memory limit, read from a
// gg-project.toml file discovered by walking parent directories.
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"

	"ggc/common"
)

// GCMode is the `garbage_collector` key's value.
type GCMode int

const (
	GCEnabled GCMode = iota
	GCDisabled
)

// Config is the decoded project configuration spec §6.5 describes.
type Config struct {
	GarbageCollector GCMode
	MemoryLimit      int64 // bytes; 0 means unset
}

// Default is the configuration used when no project file is found: GC
// enabled, no memory limit.
var Default = Config{GarbageCollector: GCEnabled, MemoryLimit: 0}

// tomlConfig mirrors the on-disk shape of gg-project.toml.
type tomlConfig struct {
	GarbageCollector string `toml:"garbage_collector"`
	MemoryLimit      string `toml:"memory_limit"`
}

// Find walks up from startDir looking for common.ProjectFileName, the same
// directory-search idiom the teacher's module resolver uses for its own
// project file. It returns the Default configuration, not an error, when no
// project file is found anywhere above startDir — a project file is
// optional (spec §6.5).
func Find(startDir string) (Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Default, err
	}

	for {
		candidate := filepath.Join(dir, common.ProjectFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return Load(candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default, nil
		}
		dir = parent
	}
}

// Load reads and decodes the project file at path, applying the
// garbage_collector/memory_limit mutual-exclusion rule from spec §6.5.
func Load(path string) (Config, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return Default, err
	}

	var tc tomlConfig
	if err := toml.Unmarshal(buf, &tc); err != nil {
		return Default, fmt.Errorf("%s: %w", path, err)
	}

	cfg := Default
	switch strings.ToLower(strings.TrimSpace(tc.GarbageCollector)) {
	case "", "enabled":
		cfg.GarbageCollector = GCEnabled
	case "disabled":
		cfg.GarbageCollector = GCDisabled
	default:
		return Default, fmt.Errorf("%s: invalid garbage_collector value %q", path, tc.GarbageCollector)
	}

	limit, err := parseMemoryLimit(tc.MemoryLimit)
	if err != nil {
		return Default, fmt.Errorf("%s: %w", path, err)
	}
	cfg.MemoryLimit = limit

	if cfg.GarbageCollector == GCDisabled && cfg.MemoryLimit != 0 {
		return Default, errors.New(path + ": memory_limit cannot be set while garbage_collector is disabled")
	}

	return cfg, nil
}

var unitMultipliers = map[string]int64{
	"B": 1,
	"K": 1024, "KB": 1024,
	"M": 1024 * 1024, "MB": 1024 * 1024,
	"G": 1024 * 1024 * 1024, "GB": 1024 * 1024 * 1024,
}

// parseMemoryLimit parses "0", "", or a sized value like "512MB"/"2G"
// (spec §6.5, case-insensitive suffix).
func parseMemoryLimit(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}

	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9') {
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("invalid memory_limit %q", s)
	}

	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid memory_limit %q: %w", s, err)
	}

	suffix := strings.ToUpper(strings.TrimSpace(s[i:]))
	if suffix == "" {
		return n, nil
	}

	mult, ok := unitMultipliers[suffix]
	if !ok {
		return 0, fmt.Errorf("invalid memory_limit unit %q", s[i:])
	}
	return n * mult, nil
}
