package yaml_adapter

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/sweep"
)

// translateSweep converts one decoded YAML sweep entry into the
// format-agnostic model, applying the same validation rules as the HCL
// loader.
func translateSweep(doc *sweepDoc, filePath string) (*config.Sweep, error) {
	if doc.Name == "" {
		return nil, errors.New("sweep entry is missing a name")
	}

	sw := &config.Sweep{
		Name:      doc.Name,
		Scheduler: doc.Scheduler,
		Script:    doc.Script,
		Order:     doc.Order,
		Source:    filePath,
	}

	if len(doc.Fields) > 0 {
		fields := make(map[string]any, len(doc.Fields))
		for name, val := range doc.Fields {
			switch val.(type) {
			case int, int64, float64, string, bool:
				fields[name] = normalizeInt(val)
			default:
				return nil, fmt.Errorf("field %q must be a number, string, or boolean, got %T", name, val)
			}
		}
		sw.Fields = fields
	}

	if len(doc.Params) == 0 {
		return nil, errors.New("a sweep must declare at least one param")
	}

	seen := make(map[string]struct{}, len(doc.Params))
	for _, p := range doc.Params {
		if p == nil {
			return nil, errors.New("params holds an empty list item")
		}
		if !sweep.ValidIdent(p.Name) {
			return nil, fmt.Errorf("param name %q is not a valid shell identifier: %w", p.Name, sweep.ErrInvalidIdentifier)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("param %q is declared more than once: %w", p.Name, sweep.ErrDuplicateParam)
		}
		seen[p.Name] = struct{}{}

		values, err := translateParam(p)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", p.Name, err)
		}
		sw.Params = append(sw.Params, sweep.Param{Name: p.Name, Values: values})
	}

	return sw, nil
}

// translateParam resolves the value source of one param entry. Exactly one
// of 'values' and 'range' must be present.
func translateParam(p *paramDoc) (sweep.Values, error) {
	hasValues := p.Values != nil
	hasRange := p.Range != nil

	switch {
	case hasValues && hasRange:
		return nil, errors.New("'values' and 'range' are mutually exclusive")
	case !hasValues && !hasRange:
		return nil, errors.New("either 'values' or a range mapping is required")
	case hasRange:
		step := int64(1)
		if p.Range.Step != nil {
			step = *p.Range.Step
		}
		r, err := sweep.NewRange(p.Range.From, p.Range.To, step)
		if err != nil {
			return nil, err
		}
		if r.Len() == 0 {
			return nil, fmt.Errorf("range(%d, %d, %d) enumerates no values: %w", r.From, r.To, r.Step, sweep.ErrEmptyValues)
		}
		return r, nil
	default:
		if len(p.Values) == 0 {
			return nil, fmt.Errorf("'values' must hold at least one element: %w", sweep.ErrEmptyValues)
		}
		elems := make([]cty.Value, 0, len(p.Values))
		for _, raw := range p.Values {
			elem, err := scalarToCty(raw)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return sweep.NewList(elems...), nil
	}
}

// scalarToCty converts a decoded YAML scalar into the cty value the shell
// compiler renders. Nested lists and mappings are rejected.
func scalarToCty(raw any) (cty.Value, error) {
	switch v := raw.(type) {
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case float64:
		return cty.NumberFloatVal(v), nil
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	default:
		return cty.NilVal, fmt.Errorf("values must be numbers, strings, or booleans, got %T: %w", raw, sweep.ErrUnsupportedValue)
	}
}

// normalizeInt widens plain ints from the YAML decoder to int64 so template
// fields carry one integer type regardless of source format.
func normalizeInt(val any) any {
	if v, ok := val.(int); ok {
		return int64(v)
	}
	return val
}
