package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// --- Sweep Definition Structures ---

// FieldsBlock captures the free-form scheduler fields of a sweep. Field
// names are validated against the dialect template at render time, so
// decoding keeps the raw body.
type FieldsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// RangeBlock is the half-open integer enumeration form of a parameter:
// from (inclusive) to to (exclusive) in increments of step, default 1.
type RangeBlock struct {
	From int64  `hcl:"from"`
	To   int64  `hcl:"to"`
	Step *int64 `hcl:"step,optional"`
}

// Param declares one swept parameter. Exactly one of the `values`
// attribute and the `range` block must be present.
type Param struct {
	Name   string         `hcl:"name,label"`
	Values hcl.Expression `hcl:"values,optional"`
	Range  *RangeBlock    `hcl:"range,block"`
}

// Sweep represents a `sweep` block from a definition file. Param blocks
// keep their declaration order, which is the default decode order.
type Sweep struct {
	Name      string       `hcl:"name,label"`
	Scheduler string       `hcl:"scheduler,optional"`
	Script    string       `hcl:"script,optional"`
	Order     []string     `hcl:"order,optional"`
	Fields    *FieldsBlock `hcl:"fields,block"`
	Params    []*Param     `hcl:"param,block"`
}

// SweepConfig represents the top-level structure of a sweep definition
// file.
type SweepConfig struct {
	Sweeps []*Sweep `hcl:"sweep,block"`
	Body   hcl.Body `hcl:",remain"`
}
