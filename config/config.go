// Package config loads component configuration from YAML, JSON, or TOML
// files and from the process environment. File lookups support extension
// auto-discovery so callers can ask for "pipeline" and get pipeline.yml,
// pipeline.yaml, pipeline.json, or pipeline.toml, whichever exists first.
// Loaded files are cached per Manager; the cache is safe for concurrent use.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	yaml "gopkg.in/yaml.v3"
)

// discoveryOrder is the extension preference when the requested name has no
// extension of its own.
var discoveryOrder = []string{".yml", ".yaml", ".json", ".toml"}

// ErrNotFound reports that no config file matched the requested name.
var ErrNotFound = errors.New("config: file not found")

// Manager resolves and caches configuration files under a single directory.
type Manager struct {
	dir string

	mu    sync.RWMutex
	cache map[string]map[string]any
}

// NewManager returns a Manager rooted at dir. An empty dir means the current
// working directory.
func NewManager(dir string) *Manager {
	if dir == "" {
		dir = "."
	}
	return &Manager{dir: dir, cache: make(map[string]map[string]any)}
}

// Load returns the named configuration, consulting the cache first. Missing
// files and parse failures degrade to an empty map with a warning log, so
// callers can treat configuration as best-effort. Use LoadStrict when a
// missing or broken file must stop the program.
func (m *Manager) Load(name string) map[string]any {
	cfg, err := m.LoadStrict(name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn().Err(err).Str("name", name).Msg("config load failed, using empty config")
		}
		return map[string]any{}
	}
	return cfg
}

// LoadStrict returns the named configuration or an error. Results are cached
// by name; use Reload to bypass the cache.
func (m *Manager) LoadStrict(name string) (map[string]any, error) {
	m.mu.RLock()
	cached, ok := m.cache[name]
	m.mu.RUnlock()
	if ok {
		return cached, nil
	}
	return m.Reload(name)
}

// Reload reads the named configuration from disk, replacing any cached copy.
func (m *Manager) Reload(name string) (map[string]any, error) {
	path, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	cfg := make(map[string]any)
	if err := unmarshalFile(path, &cfg); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.cache[name] = cfg
	m.mu.Unlock()
	return cfg, nil
}

// LoadAs decodes the named configuration into out, which must be a pointer
// to a struct or map with the appropriate yaml/json/toml tags. LoadAs does
// not use the Manager cache since out's type varies per call.
func (m *Manager) LoadAs(name string, out any) error {
	path, err := m.resolve(name)
	if err != nil {
		return err
	}
	return unmarshalFile(path, out)
}

// resolve maps a config name to an existing file path. Names carrying an
// extension are used as-is; bare names go through extension discovery.
func (m *Manager) resolve(name string) (string, error) {
	if strings.Contains(name, ".") {
		path := filepath.Join(m.dir, name)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return path, nil
	}
	for _, ext := range discoveryOrder {
		path := filepath.Join(m.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s.{yml,yaml,json,toml} in %s", ErrNotFound, name, m.dir)
}

func unmarshalFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(b, out); err != nil {
			return fmt.Errorf("parse yaml %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, out); err != nil {
			return fmt.Errorf("parse json %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, out); err != nil {
			return fmt.Errorf("parse toml %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config: unsupported extension %q in %s", ext, path)
	}
	return nil
}

// Merge shallow-merges the given maps; later maps win on key conflicts. The
// inputs are not modified.
func Merge(configs ...map[string]any) map[string]any {
	merged := make(map[string]any)
	for _, cfg := range configs {
		for k, v := range cfg {
			merged[k] = v
		}
	}
	return merged
}

// ValidateRequired checks that cfg contains every key in keys and reports
// all missing ones in a single error.
func ValidateRequired(cfg map[string]any, keys []string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := cfg[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing required keys: %s", strings.Join(missing, ", "))
	}
	return nil
}
