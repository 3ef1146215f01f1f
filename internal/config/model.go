package config

import (
	"fmt"

	"github.com/vk/sweepgridgo/internal/sweep"
)

// DefaultScheduler is the dialect assumed when a sweep names none.
const DefaultScheduler = "slurm"

// Model is the unified, format-agnostic representation of every sweep
// definition the loaders discovered.
type Model struct {
	Sweeps []*Sweep
}

// NewModel creates and returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Sweep is the format-agnostic representation of a single sweep definition.
type Sweep struct {
	// Name labels the sweep and seeds the default script filename.
	Name string

	// Scheduler names the dialect the script targets. Empty means the
	// default scheduler.
	Scheduler string

	// Script is the path the rendered script is written to, resolved
	// against the output directory. Empty means "<name>.sh".
	Script string

	// Fields holds the caller's scheduler field overrides.
	Fields map[string]any

	// Params are the swept parameters in declaration order. Declaration
	// order is the default decode order, so this is a slice, never a map.
	Params []sweep.Param

	// Order optionally names an explicit decode order.
	Order []string

	// Source is the definition file the sweep came from, kept for error
	// messages.
	Source string
}

// EffectiveScheduler returns the sweep's dialect name with the default
// applied.
func (s *Sweep) EffectiveScheduler() string {
	if s.Scheduler == "" {
		return DefaultScheduler
	}
	return s.Scheduler
}

// ScriptName returns the sweep's script path with the "<name>.sh" default
// applied.
func (s *Sweep) ScriptName() string {
	if s.Script == "" {
		return s.Name + ".sh"
	}
	return s.Script
}

// Merge appends the sweeps of other into m. Duplicate sweep names are
// rejected so two definition files cannot silently fight over one script.
func (m *Model) Merge(other *Model) error {
	for _, s := range other.Sweeps {
		if existing := m.Find(s.Name); existing != nil {
			return fmt.Errorf("%w: %q defined in both %s and %s",
				ErrDuplicateSweep, s.Name, existing.Source, s.Source)
		}
		m.Sweeps = append(m.Sweeps, s)
	}
	return nil
}

// Find returns the named sweep, or nil when the model has none.
func (m *Model) Find(name string) *Sweep {
	for _, s := range m.Sweeps {
		if s.Name == name {
			return s
		}
	}
	return nil
}
