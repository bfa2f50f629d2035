// Package config is the YAML-backed configuration surface for the demo
// CLI and for tests that want a full rpmd.IntegratorConfig without
// writing Go literals by hand. Grounded on the teacher's own
// internal/config/config.go: a Config struct with yaml tags, a
// DefaultConfig, and file-backed Load/Save.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rpmdcore/internal/rpmd"
)

const (
	DefaultDt          = 0.0005
	DefaultTemperature = 300.0
	DefaultFriction    = 1.0
	DefaultNumCopies   = 4
	DefaultMass        = 18.0
	DefaultSpringConst = 1000.0
	DefaultSteps       = 1000
)

// SystemConfig describes the harmonicbead test system: N particles of
// uniform mass, each held by a spring of the given constant.
type SystemConfig struct {
	NumParticles int     `yaml:"num_particles"`
	Mass         float64 `yaml:"mass"`
	SpringConst  float64 `yaml:"spring_const"`
}

// Config is the top-level document loaded from YAML.
type Config struct {
	Path              string       `yaml:"path"`
	Dt                float64      `yaml:"dt"`
	Temperature       float64      `yaml:"temperature"`
	Friction          float64      `yaml:"friction"`
	NumCopies         int          `yaml:"num_copies"`
	Seed              int64        `yaml:"seed"`
	ThermostatEnabled bool         `yaml:"thermostat_enabled"`
	Steps             int          `yaml:"steps"`
	Contractions      map[int]int  `yaml:"contractions"`
	System            SystemConfig `yaml:"system"`
}

// DefaultConfig returns a closed-path, thermostatted, four-bead
// configuration over a single-particle harmonic well at 300K.
func DefaultConfig() *Config {
	return &Config{
		Path:              "closed",
		Dt:                DefaultDt,
		Temperature:       DefaultTemperature,
		Friction:          DefaultFriction,
		NumCopies:         DefaultNumCopies,
		ThermostatEnabled: true,
		Steps:             DefaultSteps,
		System: SystemConfig{
			NumParticles: 1,
			Mass:         DefaultMass,
			SpringConst:  DefaultSpringConst,
		},
	}
}

// Load reads a YAML document at path, starting from DefaultConfig so any
// field the document omits keeps its default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PathKind converts the YAML "closed"/"open" string into rpmd.PathKind,
// defaulting to closed for any other value.
func (c *Config) PathKind() rpmd.PathKind {
	if c.Path == "open" {
		return rpmd.OpenPath
	}
	return rpmd.ClosedPath
}

// IntegratorConfig builds the rpmd.IntegratorConfig the stepper consumes.
// The harmonicbead system always evaluates its single force group, bit 0.
func (c *Config) IntegratorConfig() rpmd.IntegratorConfig {
	return rpmd.IntegratorConfig{
		Dt:                     c.Dt,
		Temperature:            c.Temperature,
		Friction:               c.Friction,
		NumCopies:              c.NumCopies,
		Path:                   c.PathKind(),
		ThermostatEnabled:      c.ThermostatEnabled,
		Seed:                   c.Seed,
		IntegrationForceGroups: 1,
		Contractions:           c.Contractions,
	}
}
