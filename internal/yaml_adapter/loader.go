package yaml_adapter

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/ctxlog"
)

// Loader is the YAML-specific implementation of the config.Loader
// interface. It accepts the same sweep model as the HCL loader, shaped as a
// top-level `sweeps` list.
type Loader struct{}

// NewLoader creates a new YAML sweep file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// sweepFile is the top-level structure of a YAML sweep definition file.
type sweepFile struct {
	Sweeps []*sweepDoc `yaml:"sweeps"`
}

// sweepDoc mirrors one sweep entry. Params are a list, not a mapping, so
// declaration order survives decoding.
type sweepDoc struct {
	Name      string         `yaml:"name"`
	Scheduler string         `yaml:"scheduler"`
	Script    string         `yaml:"script"`
	Order     []string       `yaml:"order"`
	Fields    map[string]any `yaml:"fields"`
	Params    []*paramDoc    `yaml:"params"`
}

// paramDoc declares one swept parameter: an explicit values list or a
// range mapping, never both.
type paramDoc struct {
	Name   string    `yaml:"name"`
	Values []any     `yaml:"values"`
	Range  *rangeDoc `yaml:"range"`
}

// rangeDoc is the half-open integer enumeration form: from (inclusive) to
// to (exclusive) in increments of step, default 1.
type rangeDoc struct {
	From int64  `yaml:"from"`
	To   int64  `yaml:"to"`
	Step *int64 `yaml:"step"`
}

// Load parses the given .yaml/.yml files and translates every sweep entry
// into the format-agnostic model. Unknown keys are rejected so a typo in a
// sweep file fails loudly instead of silently dropping a setting.
func (l *Loader) Load(ctx context.Context, files ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file_count", len(files))

	model := config.NewModel()
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}

		var root sweepFile
		if err := yaml.UnmarshalStrict(content, &root); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", file, err)
		}

		for _, doc := range root.Sweeps {
			if doc == nil {
				return nil, fmt.Errorf("invalid sweep entry in %s: empty list item", file)
			}
			sw, err := translateSweep(doc, file)
			if err != nil {
				return nil, fmt.Errorf("invalid sweep %q in %s: %w", doc.Name, file, err)
			}
			if err := model.Merge(&config.Model{Sweeps: []*config.Sweep{sw}}); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("YAML loading complete.", "sweeps", len(model.Sweeps))
	return model, nil
}
