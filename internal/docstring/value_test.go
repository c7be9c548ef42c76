package docstring

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestDisplayValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value cty.Value
		want  string
	}{
		{"string renders bare", cty.StringVal("Hello"), "Hello"},
		{"integer", cty.NumberIntVal(3), "3"},
		{"float", cty.NumberFloatVal(2.5), "2.5"},
		{"bool true", cty.True, "true"},
		{"bool false", cty.False, "false"},
		{"null", cty.NullVal(cty.String), "null"},
		{"list", cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}), "[a, b]"},
		{"tuple", cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.StringVal("x")}), "[1, x]"},
		{"object keys sorted", cty.ObjectVal(map[string]cty.Value{
			"b": cty.NumberIntVal(2),
			"a": cty.NumberIntVal(1),
		}), "{a: 1, b: 2}"},
		{"empty tuple", cty.EmptyTupleVal, "[]"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, displayValue(tc.value))
		})
	}
}
