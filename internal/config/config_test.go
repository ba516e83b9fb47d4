package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demandgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, BackendAdjList, cfg.Backend)
	assert.Equal(t, SamplerGaussian, cfg.Sampler.Mode)
	assert.Equal(t, 1000, cfg.Sampler.MaxRedraws)
	assert.Equal(t, 10.0, cfg.Sampler.Truncation)
	assert.Equal(t, NetworkGrid, cfg.Network.Kind)
	assert.Equal(t, 10, cfg.Network.Rows)
	assert.Equal(t, 10, cfg.Requests)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
seed: 42
requests: 5
backend: matrix
sampler:
  mode: uniform
network:
  kind: connections
  connections:
    - from: [0, 0]
      to: [3, 4]
    - from: [3, 4]
      to: [0, 0]
      length: 7.5
      max_speed: 13.9
log:
  level: debug
  format: json
`)
	cfg, got, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 5, cfg.Requests)
	assert.Equal(t, BackendMatrix, cfg.Backend)
	assert.Equal(t, SamplerUniform, cfg.Sampler.Mode)
	assert.Equal(t, 1000, cfg.Sampler.MaxRedraws, "defaults applied")
	require.Len(t, cfg.Network.Connections, 2)
	assert.Equal(t, [2]float64{3, 4}, cfg.Network.Connections[0].To)
	assert.Nil(t, cfg.Network.Connections[0].Length)
	require.NotNil(t, cfg.Network.Connections[1].Length)
	assert.Equal(t, 7.5, *cfg.Network.Connections[1].Length)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromPath_Errors(t *testing.T) {
	_, _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	_, _, err = LoadFromPath(writeConfig(t, "seed: [not a number"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	_, _, err = LoadFromPath(writeConfig(t, "backend: sqlite\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	length := -1.0
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative requests", func(c *Config) { c.Requests = -1 }},
		{"sampler mode", func(c *Config) { c.Sampler.Mode = "poisson" }},
		{"truncation", func(c *Config) { c.Sampler.Truncation = -2 }},
		{"max redraws", func(c *Config) { c.Sampler.MaxRedraws = -1 }},
		{"spacing", func(c *Config) { c.Network.Spacing = 0 }},
		{"grid rows", func(c *Config) { c.Network.Rows = 0 }},
		{"kind", func(c *Config) { c.Network.Kind = "hexagon" }},
		{"random radius", func(c *Config) { c.Network.Kind = NetworkRandom; c.Network.Radius = 0 }},
		{"empty connections", func(c *Config) { c.Network.Kind = NetworkConnections }},
		{"circular connection", func(c *Config) {
			c.Network.Kind = NetworkConnections
			c.Network.Connections = []ConnectionConfig{{From: [2]float64{1, 1}, To: [2]float64{1, 1}}}
		}},
		{"negative length", func(c *Config) {
			c.Network.Kind = NetworkConnections
			c.Network.Connections = []ConnectionConfig{{To: [2]float64{1, 1}, Length: &length}}
		}},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"infinite spacing", func(c *Config) { c.Network.Spacing = math.Inf(1) }},
		{"nan spacing", func(c *Config) { c.Network.Spacing = math.NaN() }},
		{"infinite truncation", func(c *Config) { c.Sampler.Truncation = math.Inf(1) }},
		{"infinite max speed", func(c *Config) { c.Network.MaxSpeed = math.Inf(1) }},
		{"nan max speed", func(c *Config) { c.Network.MaxSpeed = math.NaN() }},
		{"infinite side", func(c *Config) { c.Network.Kind = NetworkRandom; c.Network.Side = math.Inf(1) }},
		{"infinite radius", func(c *Config) { c.Network.Kind = NetworkRandom; c.Network.Radius = math.Inf(1) }},
		{"nan coordinate", func(c *Config) {
			c.Network.Kind = NetworkConnections
			c.Network.Connections = []ConnectionConfig{{From: [2]float64{math.NaN(), 0}, To: [2]float64{1, 1}}}
		}},
		{"infinite length", func(c *Config) {
			inf := math.Inf(1)
			c.Network.Kind = NetworkConnections
			c.Network.Connections = []ConnectionConfig{{To: [2]float64{1, 1}, Length: &inf}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Network.Kind = NetworkRandom
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, _, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFindConfigPath_Env(t *testing.T) {
	path := writeConfig(t, "seed: 1\n")
	t.Setenv(EnvConfigPath, path)
	assert.Equal(t, path, FindConfigPath())

	cfg, got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, int64(1), cfg.Seed)
}

func TestLoadFromPath_NonFinite(t *testing.T) {
	for _, body := range []string{
		"network: {kind: path, n: 3, spacing: .inf}\n",
		"sampler: {truncation: .inf}\n",
		"network: {kind: random, side: .nan}\n",
		"network: {max_speed: .inf}\n",
	} {
		_, _, err := LoadFromPath(writeConfig(t, body))
		require.ErrorIs(t, err, ErrInvalidConfig, body)
	}
}
