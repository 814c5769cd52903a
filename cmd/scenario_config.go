package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/capacity-sim/capacity-sim/sim"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

type Scenario struct {
	Workers       int       `yaml:"workers"`
	QueueCapacity *int      `yaml:"queue_capacity"` // absent means unbounded
	Endpoints     int       `yaml:"endpoints"`
	RPMLimit      int       `yaml:"rpm_limit"`
	RPMLimits     []int     `yaml:"rpm_limits"` // per-endpoint overrides, wins over rpm_limit
	Percentiles   []float64 `yaml:"percentiles"`
}

// GetScenarioConfig reads a named scenario preset from a YAML file and turns
// it into a simulation Config. The Config is validated by NewSimulator, not
// here; this only resolves the preset shape.
func GetScenarioConfig(scenarioFilePath string, scenarioName string) (*sim.Config, error) {
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", scenarioFilePath, err)
	}

	scenario, ok := cfg.Scenarios[scenarioName]
	if !ok {
		return nil, fmt.Errorf("scenario %q not found in %s", scenarioName, scenarioFilePath)
	}

	limits := scenario.RPMLimits
	if len(limits) == 0 {
		limits = sim.UniformRPMLimits(scenario.Endpoints, scenario.RPMLimit)
	}
	capacity := sim.UnboundedCapacity
	if scenario.QueueCapacity != nil {
		capacity = *scenario.QueueCapacity
	}
	return &sim.Config{
		Workers:       scenario.Workers,
		QueueCapacity: capacity,
		RPMLimits:     limits,
		Percentiles:   scenario.Percentiles,
	}, nil
}
