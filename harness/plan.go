package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan names the cases of one run: every generator at every size.
type Plan struct {
	Generators []string `yaml:"generators"`
	Sizes      []int    `yaml:"sizes"`
	Seed       int64    `yaml:"seed"`
}

// PlanFromConfig builds a plan from the environment-derived configuration,
// preferring the YAML plan file when one is named.
func PlanFromConfig(cfg *Config) (Plan, error) {
	if cfg.PlanFile != "" {
		return LoadPlan(cfg.PlanFile)
	}
	return Plan{Generators: cfg.Generators, Sizes: cfg.Sizes, Seed: cfg.Seed}, nil
}

// LoadPlan reads a run plan from a YAML file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, fmt.Errorf("failed to parse plan file %s: %w", path, err)
	}
	if len(plan.Generators) == 0 || len(plan.Sizes) == 0 {
		return Plan{}, fmt.Errorf("plan file %s must name at least one generator and one size", path)
	}
	return plan, nil
}
