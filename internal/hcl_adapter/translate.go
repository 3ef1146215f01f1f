package hcl_adapter

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/schema"
	"github.com/vk/sweepgridgo/internal/sweep"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateSweep converts a decoded sweep block into the format-agnostic
// model, validating everything that is knowable without a dialect template.
func translateSweep(block *schema.Sweep, filePath string) (*config.Sweep, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	sw := &config.Sweep{
		Name:      block.Name,
		Scheduler: block.Scheduler,
		Script:    block.Script,
		Order:     block.Order,
		Source:    filePath,
	}

	if block.Fields != nil {
		fields, fieldDiags := translateFields(block.Fields.Body)
		diags = append(diags, fieldDiags...)
		sw.Fields = fields
	}

	if len(block.Params) == 0 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Sweep has no parameters",
			Detail:   fmt.Sprintf("Sweep %q must declare at least one param block.", block.Name),
		})
	}

	seen := make(map[string]struct{}, len(block.Params))
	for _, p := range block.Params {
		if !sweep.ValidIdent(p.Name) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid param name",
				Detail:   fmt.Sprintf("Param %q is not a valid shell identifier.", p.Name),
			})
			continue
		}
		if _, dup := seen[p.Name]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate param block",
				Detail:   fmt.Sprintf("Param %q is declared more than once.", p.Name),
			})
			continue
		}
		seen[p.Name] = struct{}{}

		values, paramDiags := translateParam(p)
		diags = append(diags, paramDiags...)
		if paramDiags.HasErrors() {
			continue
		}
		sw.Params = append(sw.Params, sweep.Param{Name: p.Name, Values: values})
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return sw, nil
}

// exprPresent reports whether an optional expression attribute was written
// in the source file. gohcl assigns absent hcl.Expression fields a synthetic
// expression evaluating to null rather than leaving them nil, so a nil check
// alone cannot detect absence.
func exprPresent(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	if len(expr.Variables()) > 0 {
		return true
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return true
	}
	return !val.IsNull()
}

// translateParam converts one param block into its value source. The
// 'values' attribute and the 'range' block are mutually exclusive and
// exactly one is required.
func translateParam(p *schema.Param) (sweep.Values, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	hasValues := exprPresent(p.Values)
	hasRange := p.Range != nil

	switch {
	case hasValues && hasRange:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Conflicting value sources",
			Detail:   fmt.Sprintf("Param %q sets both 'values' and a 'range' block; use exactly one.", p.Name),
			Subject:  p.Values.Range().Ptr(),
		})
		return nil, diags

	case !hasValues && !hasRange:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing value source",
			Detail:   fmt.Sprintf("Param %q must set 'values' or declare a 'range' block.", p.Name),
		})
		return nil, diags

	case hasRange:
		step := int64(1)
		if p.Range.Step != nil {
			step = *p.Range.Step
		}
		r, err := sweep.NewRange(p.Range.From, p.Range.To, step)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid range",
				Detail:   fmt.Sprintf("Param %q: %s.", p.Name, err),
			})
			return nil, diags
		}
		if r.Len() == 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Empty range",
				Detail:   fmt.Sprintf("Param %q: range(%d, %d, %d) enumerates no values.", p.Name, r.From, r.To, r.Step),
			})
			return nil, diags
		}
		return r, nil

	default:
		return translateValuesExpr(p.Name, p.Values)
	}
}

// translateValuesExpr evaluates a literal 'values' list into a sweep.List.
// Only literal expressions are accepted: sweep files declare data, they do
// not compute it.
func translateValuesExpr(name string, expr hcl.Expression) (sweep.Values, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	if len(expr.Variables()) > 0 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid values expression",
			Detail:   fmt.Sprintf("Param %q: 'values' must be a literal list.", name),
			Subject:  expr.Range().Ptr(),
		})
		return nil, diags
	}

	val, valDiags := expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return nil, diags
	}

	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid values expression",
			Detail:   fmt.Sprintf("Param %q: 'values' must be a list of scalars.", name),
			Subject:  expr.Range().Ptr(),
		})
		return nil, diags
	}

	var elems []cty.Value
	it := val.ElementIterator()
	for it.Next() {
		_, elem := it.Element()
		elemTy := elem.Type()
		if elem.IsNull() || (elemTy != cty.Number && elemTy != cty.String && elemTy != cty.Bool) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported value type",
				Detail:   fmt.Sprintf("Param %q: values must be numbers, strings, or booleans.", name),
				Subject:  expr.Range().Ptr(),
			})
			return nil, diags
		}
		elems = append(elems, elem)
	}

	if len(elems) == 0 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Empty values list",
			Detail:   fmt.Sprintf("Param %q: 'values' must hold at least one element.", name),
			Subject:  expr.Range().Ptr(),
		})
		return nil, diags
	}

	return sweep.NewList(elems...), nil
}

// translateFields evaluates the literal attributes of a fields block into
// native Go values. Field names are free-form here; the renderer validates
// them against the dialect template.
func translateFields(body hcl.Body) (map[string]any, hcl.Diagnostics) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	fields := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		if len(attr.Expr.Variables()) > 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid field value",
				Detail:   fmt.Sprintf("Field %q must be a literal value.", name),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}

		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}

		goVal, err := ctyToNative(val)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid field value",
				Detail:   fmt.Sprintf("Field %q: %s.", name, err),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		fields[name] = goVal
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return fields, nil
}

// ctyToNative converts a literal scalar cty value into its native Go
// counterpart. Integral numbers become int64 so they render without an
// exponent; anything non-scalar is rejected.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, fmt.Errorf("null values are not allowed")
	}

	switch v.Type() {
	case cty.String:
		return v.AsString(), nil

	case cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil

	case cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return nil, fmt.Errorf("internal error: failed to convert cty.Bool: %w", err)
		}
		return b, nil

	default:
		return nil, fmt.Errorf("unsupported field type %s", v.Type().FriendlyName())
	}
}
