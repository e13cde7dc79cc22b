package config

import (
	"fmt"

	"github.com/vk/edgecpwg/internal/cpwg"
)

// Model is the unified, format-agnostic representation of a batch file set.
type Model struct {
	Lines []*Line
}

// Line is one named cross-section to evaluate.
type Line struct {
	Name   string
	Params cpwg.Params
	// Source is a human-readable location such as "lines.hcl:4,1-12".
	Source string
}

// Add appends l to the model, rejecting a name that is already taken.
func (m *Model) Add(l *Line) error {
	for _, existing := range m.Lines {
		if existing.Name == l.Name {
			return fmt.Errorf("duplicate line %q: defined at %s and %s", l.Name, existing.Source, l.Source)
		}
	}
	m.Lines = append(m.Lines, l)
	return nil
}
