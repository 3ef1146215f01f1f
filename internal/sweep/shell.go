// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file renders parameter names and values as bash source text: the
// array declarations and the modulo/divide extraction lines that the
// submission template splices into the final script.
package sweep

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// identPattern matches names that are usable as bash variable names.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdent reports whether name can be used as a shell variable name.
func ValidIdent(name string) bool {
	return identPattern.MatchString(name)
}

// plainWordPattern matches strings that need no quoting inside a bash array
// literal.
var plainWordPattern = regexp.MustCompile(`^[A-Za-z0-9_./+:=@-]+$`)

// quoteWord renders s as a single shell word, single-quoting it unless it is
// a plain word.
func quoteWord(s string) string {
	if plainWordPattern.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// FormatValue renders one cty scalar as a shell word. Only numbers,
// strings, and bools have a literal form; everything else is rejected.
func FormatValue(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", fmt.Errorf("%w: null", ErrUnsupportedValue)
	}
	if !v.IsKnown() {
		return "", fmt.Errorf("%w: unknown value", ErrUnsupportedValue)
	}
	switch v.Type() {
	case cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return strconv.FormatInt(i, 10), nil
		}
		return bf.Text('g', -1), nil
	case cty.String:
		return quoteWord(v.AsString()), nil
	case cty.Bool:
		if v.True() {
			return "true", nil
		}
		return "false", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedValue, v.Type().FriendlyName())
	}
}

// arrayLiteral renders the bash declaration of the <name>_values array. A
// List spells out every element; a Range defers to seq so the array is
// expanded by the shell at dispatch time. The seq bounds are inclusive, so
// the emitted last element is computed from the range length rather than
// passing the exclusive To through.
func arrayLiteral(name string, vs Values) (string, error) {
	switch v := vs.(type) {
	case List:
		words := make([]string, 0, len(v.Elems))
		for _, el := range v.Elems {
			w, err := FormatValue(el)
			if err != nil {
				return "", err
			}
			words = append(words, w)
		}
		return fmt.Sprintf("%s_values=( %s )", name, strings.Join(words, " ")), nil
	case Range:
		return fmt.Sprintf("%s_values=($( seq %d %d %d ))", name, v.From, v.Step, v.Last()), nil
	default:
		// Values is sealed; a third implementation is a programmer error.
		panic(fmt.Sprintf("sweep: unhandled values kind %T", vs))
	}
}

// assignLine renders the extraction of a parameter's value from the residual
// index held in the trial variable.
func assignLine(name string) string {
	return fmt.Sprintf("%s=${%s_values[$(( trial %% ${#%s_values[@]} ))]}", name, name, name)
}

// advanceLine renders the residual index update that shifts trial past the
// digit owned by the named parameter.
func advanceLine(name string) string {
	return fmt.Sprintf("trial=$(( trial / ${#%s_values[@]} ))", name)
}
