package config

import (
	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Bindlefile represents the structure of the bindle.yaml configuration file.
type Bindlefile struct {
	Version         string    `yaml:"version"`
	Root            string    `yaml:"root"`
	Entries         []string  `yaml:"entries"`
	Exclude         []string  `yaml:"exclude"`
	Alias           AliasList `yaml:"alias"`
	Extensions      []string  `yaml:"extensions"`
	TypedExtensions []string  `yaml:"typedExtensions"`
	ModuleDirs      []string  `yaml:"moduleDirs"`
	Components      string    `yaml:"components"`
	Shim            bool      `yaml:"shim"`
	ShimDir         string    `yaml:"shimDir"`
}

// AliasList preserves the YAML mapping order of alias definitions.
// Order matters: the first matching alias wins during path rewriting.
type AliasList []domain.Alias

// UnmarshalYAML implements yaml.Unmarshaler, reading the alias mapping
// in document order.
func (l *AliasList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return zerr.With(domain.ErrConfigParseFailed, "field", "alias")
	}

	out := make(AliasList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, domain.Alias{
			Name:   node.Content[i].Value,
			Target: node.Content[i+1].Value,
		})
	}
	*l = out
	return nil
}
