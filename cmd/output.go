package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/bizperiod/internal/config"
	"github.com/zjrosen/bizperiod/internal/period"
)

// periodView is the structured rendering of a Period for json and yaml output.
type periodView struct {
	Input       string `json:"input,omitempty" yaml:"input,omitempty"`
	Period      string `json:"period" yaml:"period"`
	Kind        string `json:"kind" yaml:"kind"`
	Granularity string `json:"granularity" yaml:"granularity"`
	Start       string `json:"start,omitempty" yaml:"start,omitempty"`
	End         string `json:"end,omitempty" yaml:"end,omitempty"`
	Months      int    `json:"months,omitempty" yaml:"months,omitempty"`
}

func newPeriodView(input string, p period.Period) periodView {
	v := periodView{
		Input:       input,
		Period:      p.String(),
		Kind:        p.Kind().String(),
		Granularity: p.Granularity().String(),
	}
	if !p.IsSentinel() {
		v.Start = p.Start().String()
		v.End = p.End().String()
		v.Months = p.Months()
	}
	return v
}

// describe renders a Period as one tab-separated text line.
func describe(p period.Period) string {
	if p.IsSentinel() {
		return fmt.Sprintf("%s\t%s", p, p.Granularity())
	}
	return fmt.Sprintf("%s\t%s %s\t%s..%s", p, p.Kind(), p.Granularity(), p.Start(), p.End())
}

// write renders data in the configured format; text output is delegated to the
// text callback.
func (a *app) write(w io.Writer, data any, text func(io.Writer) error) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}
