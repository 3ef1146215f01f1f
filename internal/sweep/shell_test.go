package sweep

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestValidIdent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		ident string
		want  bool
	}{
		{"plain lowercase", "alpha", true},
		{"leading underscore", "_x", true},
		{"digits after first", "a1", true},
		{"leading digit", "1a", false},
		{"hyphen", "a-b", false},
		{"dot", "a.b", false},
		{"space", "a b", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ValidIdent(tc.ident))
		})
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		val         cty.Value
		want        string
		errContains string
	}{
		{name: "integer", val: cty.NumberIntVal(42), want: "42"},
		{name: "negative integer", val: cty.NumberIntVal(-3), want: "-3"},
		{name: "float", val: cty.NumberFloatVal(0.25), want: "0.25"},
		{name: "plain string", val: cty.StringVal("fast"), want: "fast"},
		{name: "path string", val: cty.StringVal("data/run.csv"), want: "data/run.csv"},
		{name: "string with space", val: cty.StringVal("hello world"), want: "'hello world'"},
		{name: "string with dollar", val: cty.StringVal("$HOME"), want: "'$HOME'"},
		{name: "string with single quote", val: cty.StringVal("it's"), want: `'it'\''s'`},
		{name: "bool true", val: cty.True, want: "true"},
		{name: "bool false", val: cty.False, want: "false"},
		{name: "null", val: cty.NullVal(cty.Number), errContains: "unsupported value type"},
		{name: "list", val: cty.ListVal([]cty.Value{cty.StringVal("x")}), errContains: "unsupported value type"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := FormatValue(tc.val)

			if tc.errContains != "" {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrUnsupportedValue)
				require.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestArrayLiteral_List(t *testing.T) {
	t.Parallel()

	got, err := arrayLiteral("a", NewList(cty.NumberIntVal(1), cty.NumberIntVal(2), cty.NumberIntVal(3)))

	require.NoError(t, err)
	require.Equal(t, "a_values=( 1 2 3 )", got)
}

// A range renders as a seq expansion with an inclusive final element, so the
// shell enumerates exactly the same values the equivalent list would spell
// out.
func TestArrayLiteral_Range(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		r    Range
		want string
	}{
		{"unit step", Range{From: 0, To: 10, Step: 1}, "a_values=($( seq 0 1 9 ))"},
		{"stride three", Range{From: 0, To: 10, Step: 3}, "a_values=($( seq 0 3 9 ))"},
		{"descending", Range{From: 10, To: 0, Step: -2}, "a_values=($( seq 10 -2 2 ))"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := arrayLiteral("a", tc.r)

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestExtractionLines(t *testing.T) {
	t.Parallel()

	require.Equal(t, "lr=${lr_values[$(( trial % ${#lr_values[@]} ))]}", assignLine("lr"))
	require.Equal(t, "trial=$(( trial / ${#lr_values[@]} ))", advanceLine("lr"))
}
