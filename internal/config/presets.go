package config

// Presets collects a few named starting configurations for the demo CLI,
// grounded on the teacher's per-model Presets map (internal/config/presets.go).
var Presets = map[string]*Config{
	"free": {
		Path: "closed", Dt: 0.001, NumCopies: 4, Temperature: 300.0,
		ThermostatEnabled: false, Steps: 1000,
		System: SystemConfig{NumParticles: 1, Mass: 1.0, SpringConst: 0.0},
	},
	"thermostatted": {
		Path: "closed", Dt: 0.0005, NumCopies: 4, Temperature: 300.0, Friction: 1.0,
		ThermostatEnabled: true, Steps: 10000,
		System: SystemConfig{NumParticles: 1, Mass: 18.0, SpringConst: 1000.0},
	},
	"pigs": {
		Path: "open", Dt: 0.0005, NumCopies: 8, Temperature: 10.0, Friction: 1.0,
		ThermostatEnabled: true, Steps: 10000,
		System: SystemConfig{NumParticles: 1, Mass: 1.0, SpringConst: 500.0},
	},
	"contracted": {
		Path: "closed", Dt: 0.0005, NumCopies: 8, Temperature: 300.0, Friction: 1.0,
		ThermostatEnabled: true, Steps: 10000,
		Contractions: map[int]int{1: 4},
		System:       SystemConfig{NumParticles: 1, Mass: 18.0, SpringConst: 1000.0},
	},
}

// GetPreset returns a named preset, or nil if name is unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns every preset name.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
