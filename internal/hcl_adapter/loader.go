package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/ctxlog"
	"github.com/vk/sweepgridgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL sweep file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses the given .hcl files and translates every sweep block into
// the format-agnostic model. Sweeps are merged one at a time so a duplicate
// name is caught whether the collision is within one file or across files.
func (l *Loader) Load(ctx context.Context, files ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file_count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.SweepConfig
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Sweeps {
			sw, translateDiags := translateSweep(block, file)
			if translateDiags.HasErrors() {
				return nil, fmt.Errorf("invalid sweep %q in %s: %w", block.Name, file, translateDiags)
			}
			if err := model.Merge(&config.Model{Sweeps: []*config.Sweep{sw}}); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("HCL loading complete.", "sweeps", len(model.Sweeps))
	return model, nil
}
