// Package fixtures embeds canonical period examples.
//
// The cases double as documentation for periodctl examples and as a regression
// table for the parser: every input must parse to its canonical string and bounds.
package fixtures

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed periods.yaml
var periodsYAML []byte

// Case is one example period string. Start and End are "YYYY-MM" calendar
// bounds and are empty for the TBD and Unknown sentinels.
type Case struct {
	Input       string `json:"input" yaml:"input"`
	Canonical   string `json:"canonical" yaml:"canonical"`
	Description string `json:"description" yaml:"description"`
	Start       string `json:"start,omitempty" yaml:"start,omitempty"`
	End         string `json:"end,omitempty" yaml:"end,omitempty"`
}

type document struct {
	Cases []Case `json:"cases" yaml:"cases"`
}

// Raw returns the embedded YAML document.
func Raw() []byte {
	return periodsYAML
}

// Cases decodes the embedded examples in file order.
func Cases() ([]Case, error) {
	var doc document
	if err := yaml.Unmarshal(periodsYAML, &doc); err != nil {
		return nil, fmt.Errorf("decoding period fixtures: %w", err)
	}
	return doc.Cases, nil
}
