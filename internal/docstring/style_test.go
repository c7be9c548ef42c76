package docstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	t.Parallel()

	style, err := ParseStyle("numpy")
	require.NoError(t, err)
	require.Equal(t, StyleNumpy, style)

	style, err = ParseStyle("google")
	require.NoError(t, err)
	require.Equal(t, StyleGoogle, style)

	_, err = ParseStyle("restructured")
	require.Error(t, err)
	require.Contains(t, err.Error(), "restructured")
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		want  ParamKind
	}{
		{"", KindPositional},
		{"positional", KindPositional},
		{"keyword", KindKeyword},
		{"variadic_args", KindVariadicArgs},
		{"variadic_keywords", KindVariadicKeywords},
	}
	for _, tc := range testCases {
		kind, err := ParseKind(tc.input)
		require.NoError(t, err, "kind %q", tc.input)
		require.Equal(t, tc.want, kind)
	}

	_, err := ParseKind("varargs")
	require.Error(t, err)
	require.Contains(t, err.Error(), "varargs")
}

func TestParamKind_String(t *testing.T) {
	t.Parallel()

	for _, kind := range []ParamKind{KindPositional, KindKeyword, KindVariadicArgs, KindVariadicKeywords} {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}
}
