// Package catalog reads the list of candidate names searched by the CLI.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Candidate struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type Catalog struct {
	Candidates []Candidate `yaml:"candidates"`
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}
	return &catalog, nil
}

// Names returns the non-empty candidate names in file order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Candidates))
	for _, candidate := range c.Candidates {
		if candidate.Name == "" {
			continue
		}
		names = append(names, candidate.Name)
	}
	return names
}

// Find returns the candidate with name.
func (c *Catalog) Find(name string) (Candidate, bool) {
	if c == nil {
		return Candidate{}, false
	}
	for _, candidate := range c.Candidates {
		if candidate.Name == name {
			return candidate, true
		}
	}
	return Candidate{}, false
}
