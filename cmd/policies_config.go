package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

// Define struct for YAML
type PolicyTable struct {
	Policies []PolicyEntry `yaml:"policies"`
}

type PolicyEntry struct {
	ReorderPoint int `yaml:"reorder_point"`
	TargetLevel  int `yaml:"target_level"`
}

// ResolvePolicies returns the sweep to evaluate: the policies listed in the
// yaml table at path, or the built-in Law & Kelton sweep when no path is
// given.
func ResolvePolicies(path string) ([]sim.Policy, error) {
	if path == "" {
		return DefaultPolicies(), nil
	}
	return LoadPolicies(path)
}

// LoadPolicies reads an (s,S) policy table from a yaml file. Every entry
// must be a valid policy.
func LoadPolicies(path string) ([]sim.Policy, error) {
	// Read YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var table PolicyTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	if len(table.Policies) == 0 {
		return nil, fmt.Errorf("%s lists no policies", path)
	}

	policies := make([]sim.Policy, 0, len(table.Policies))
	for i, entry := range table.Policies {
		policy, err := sim.NewPolicy(entry.ReorderPoint, entry.TargetLevel)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", path, i, err)
		}
		policies = append(policies, policy)
	}
	return policies, nil
}

// DefaultPolicies is the nine-policy sweep from Law & Kelton:
// s in {20,40,60} crossed with S in {40,60,80,100}, keeping s < S.
func DefaultPolicies() []sim.Policy {
	var policies []sim.Policy
	for _, s := range []int{20, 40, 60} {
		for _, S := range []int{40, 60, 80, 100} {
			policy, err := sim.NewPolicy(s, S)
			if err != nil {
				continue
			}
			policies = append(policies, policy)
		}
	}
	return policies
}
