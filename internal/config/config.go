// Package config loads the demandgen configuration: which road network to
// build, which storage backend holds it, and how demand is sampled.
//
// Config file locations (priority order):
//  1. $GEOMGRAPH_CONFIG
//  2. ./demandgen.yaml
//  3. ~/.config/geomgraph/demandgen.yaml
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config search path.
const EnvConfigPath = "GEOMGRAPH_CONFIG"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Backend selects the core.Storage implementation.
type Backend string

const (
	BackendAdjList Backend = "adjlist"
	BackendMatrix  Backend = "matrix"
)

// SamplerMode selects the node sampler used for pickups and deliveries.
type SamplerMode string

const (
	SamplerGaussian SamplerMode = "gaussian"
	SamplerUniform  SamplerMode = "uniform"
)

// NetworkKind selects the road-network topology.
type NetworkKind string

const (
	NetworkGrid        NetworkKind = "grid"
	NetworkPath        NetworkKind = "path"
	NetworkCycle       NetworkKind = "cycle"
	NetworkStar        NetworkKind = "star"
	NetworkRandom      NetworkKind = "random"
	NetworkConnections NetworkKind = "connections"
)

// Config is the root of demandgen.yaml.
type Config struct {
	Seed     int64         `yaml:"seed"`
	Requests int           `yaml:"requests"`
	Backend  Backend       `yaml:"backend"`
	Sampler  SamplerConfig `yaml:"sampler"`
	Network  NetworkConfig `yaml:"network"`
	Log      LogConfig     `yaml:"log"`
}

// SamplerConfig tunes the node sampler.
type SamplerConfig struct {
	Mode SamplerMode `yaml:"mode"`
	// MaxRedraws bounds the Gaussian redraw loop before clamping.
	MaxRedraws int `yaml:"max_redraws"`
	// Truncation is the Gaussian truncation bound B.
	Truncation float64 `yaml:"truncation"`
	// MaxDeliveryRedraws bounds redraws of a delivery equal to its pickup.
	MaxDeliveryRedraws int `yaml:"max_delivery_redraws"`
}

// NetworkConfig describes the road network.
type NetworkConfig struct {
	Kind    NetworkKind `yaml:"kind"`
	Rows    int         `yaml:"rows,omitempty"`
	Cols    int         `yaml:"cols,omitempty"`
	N       int         `yaml:"n,omitempty"`
	Spacing float64     `yaml:"spacing,omitempty"`
	Side    float64     `yaml:"side,omitempty"`
	Radius  float64     `yaml:"radius,omitempty"`
	OneWay  bool        `yaml:"one_way,omitempty"`
	// MaxSpeed is attached to every generated road; 0 leaves it unknown.
	MaxSpeed float64 `yaml:"max_speed,omitempty"`

	// Connections lists explicit roads for kind "connections".
	Connections []ConnectionConfig `yaml:"connections,omitempty"`
}

// ConnectionConfig is one explicit road.
type ConnectionConfig struct {
	From     [2]float64 `yaml:"from"`
	To       [2]float64 `yaml:"to"`
	Length   *float64   `yaml:"length,omitempty"`
	MaxSpeed float64    `yaml:"max_speed,omitempty"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return &cfg, path, nil
}

// FindConfigPath returns the first existing config path, or "".
func FindConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	candidates := []string{"demandgen.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "geomgraph", "demandgen.yaml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Save writes config to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultConfig returns a 10×10 two-way grid with Gaussian demand.
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Requests == 0 {
		c.Requests = 10
	}
	if c.Backend == "" {
		c.Backend = BackendAdjList
	}
	if c.Sampler.Mode == "" {
		c.Sampler.Mode = SamplerGaussian
	}
	if c.Sampler.MaxRedraws == 0 {
		c.Sampler.MaxRedraws = 1000
	}
	if c.Sampler.Truncation == 0 {
		c.Sampler.Truncation = 10
	}
	if c.Sampler.MaxDeliveryRedraws == 0 {
		c.Sampler.MaxDeliveryRedraws = 100
	}
	if c.Network.Kind == "" {
		c.Network.Kind = NetworkGrid
	}
	if c.Network.Kind == NetworkGrid {
		if c.Network.Rows == 0 {
			c.Network.Rows = 10
		}
		if c.Network.Cols == 0 {
			c.Network.Cols = 10
		}
	}
	if c.Network.N == 0 {
		c.Network.N = 10
	}
	if c.Network.Spacing == 0 {
		c.Network.Spacing = 1
	}
	if c.Network.Side == 0 {
		c.Network.Side = 10
	}
	if c.Network.Radius == 0 {
		c.Network.Radius = 2
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate reports the first invalid field, wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Requests < 0 {
		return invalid("requests=%d must be ≥ 0", c.Requests)
	}
	switch c.Backend {
	case BackendAdjList, BackendMatrix:
	default:
		return invalid("unknown backend %q", c.Backend)
	}
	switch c.Sampler.Mode {
	case SamplerGaussian, SamplerUniform:
	default:
		return invalid("unknown sampler mode %q", c.Sampler.Mode)
	}
	if c.Sampler.MaxRedraws < 0 || c.Sampler.MaxDeliveryRedraws < 0 {
		return invalid("redraw bounds must be ≥ 0")
	}
	if !positiveFinite(c.Sampler.Truncation) {
		return invalid("sampler.truncation=%g must be finite and > 0", c.Sampler.Truncation)
	}
	if !positiveFinite(c.Network.Spacing) {
		return invalid("network.spacing=%g must be finite and > 0", c.Network.Spacing)
	}
	if !nonNegativeFinite(c.Network.MaxSpeed) {
		return invalid("network.max_speed=%g must be finite and ≥ 0", c.Network.MaxSpeed)
	}

	switch c.Network.Kind {
	case NetworkGrid:
		if c.Network.Rows < 1 || c.Network.Cols < 1 {
			return invalid("grid needs rows,cols ≥ 1 (got %d,%d)", c.Network.Rows, c.Network.Cols)
		}
	case NetworkPath, NetworkCycle, NetworkStar:
		if c.Network.N < 1 {
			return invalid("%s needs n ≥ 1 (got %d)", c.Network.Kind, c.Network.N)
		}
	case NetworkRandom:
		if !positiveFinite(c.Network.Side) || !positiveFinite(c.Network.Radius) {
			return invalid("random needs finite side, radius > 0 (got %g, %g)", c.Network.Side, c.Network.Radius)
		}
	case NetworkConnections:
		if len(c.Network.Connections) == 0 {
			return invalid("connections network lists no connections")
		}
		for i, cc := range c.Network.Connections {
			for _, v := range []float64{cc.From[0], cc.From[1], cc.To[0], cc.To[1]} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return invalid("connections[%d] has a non-finite coordinate", i)
				}
			}
			if cc.From == cc.To {
				return invalid("connections[%d] is circular", i)
			}
			if cc.Length != nil && !nonNegativeFinite(*cc.Length) {
				return invalid("connections[%d].length=%g must be finite and ≥ 0", i, *cc.Length)
			}
			if !nonNegativeFinite(cc.MaxSpeed) {
				return invalid("connections[%d].max_speed=%g must be finite and ≥ 0", i, cc.MaxSpeed)
			}
		}
	default:
		return invalid("unknown network kind %q", c.Network.Kind)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return invalid("unknown log format %q", c.Log.Format)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
