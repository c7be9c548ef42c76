package docstring

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/argdocgo/internal/registry"
)

// newTestRegistry builds a registry with the fixtures most tests share.
func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New(registry.Options{
		IgnoreArgs:     []string{"self", "cls"},
		IgnoreKeywords: []string{"hidden"},
	})
	require.NoError(t, reg.RegisterArgument("x", "int", "the x value", false))
	require.NoError(t, reg.RegisterArgument("y", "string", "the y value", false))
	hello := cty.StringVal("Hello")
	require.NoError(t, reg.RegisterKeyword("kw1", "string", "the first keyword", &hello, false))
	require.NoError(t, reg.RegisterKeyword("kw2", "string", "the second keyword", nil, false))
	require.NoError(t, reg.RegisterKeyword("mode", "string", "the processing mode", nil, false))
	return reg
}

func TestRender_SingleArgument(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name:   "f",
		Doc:    "Does nothing.",
		Params: []Param{{Name: "x"}},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	want := "Does nothing." +
		"\n\nArguments\n----------\n" +
		"x : int\n    the x value\n" +
		"    \n"
	require.Equal(t, want, got)
}

func TestRender_TrimsSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name:   "f",
		Doc:    "\n    Does nothing.\n    ",
		Params: []Param{{Name: "x"}},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	require.True(t, len(got) > 0)
	require.Equal(t, "Does nothing.", got[:len("Does nothing.")])
}

func TestRender_RegistryDefaultWinsOverDeclared(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "kw1", HasDefault: true, Default: cty.StringVal("Test1")},
		},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	require.Contains(t, got, "kw1 : string, optional\n    the first keyword Default: Hello\n")
	require.NotContains(t, got, "Test1")
}

func TestRender_DeclaredDefaultUsedWhenRegistryHasNone(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "kw2", HasDefault: true, Default: cty.StringVal("Test2")},
		},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	require.Contains(t, got, "kw2 : string, optional\n    the second keyword Default: Test2\n")
}

func TestRender_KeywordOnlyWithoutAnyDefault(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "mode", Kind: KindKeyword},
		},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	require.Contains(t, got, "mode : string, optional\n    the processing mode\n")
	require.NotContains(t, got, "Default:")
}

func TestRender_GoogleStyle(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleGoogle, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "x"},
			{Name: "kw2", HasDefault: true, Default: cty.StringVal("Test2")},
		},
		Raises: []Raise{{Name: "KeyError", Condition: "If the key is missing."}},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	want := "Does nothing." +
		"\n\nArgs:\n" +
		"    x (int): the x value\n" +
		"\n\nKeywords:\n" +
		"    kw2 (string, optional): the second keyword Default: Test2\n" +
		"\n\nRaises:\n" +
		"    KeyError: If the key is missing.\n" +
		"    \n"
	require.Equal(t, want, got)
}

func TestRender_MissingDocstring(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)

	for _, doc := range []string{"", "   \n\t  "} {
		_, err := renderer.Render(Callable{Name: "f", Doc: doc})
		require.ErrorIs(t, err, ErrMissingDocstring)
		require.Contains(t, err.Error(), `"f"`)
	}
}

func TestRender_UnregisteredArgument(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name:   "f",
		Doc:    "Does nothing.",
		Params: []Param{{Name: "ghost"}},
	}

	_, err := renderer.Render(callable)

	require.ErrorIs(t, err, ErrUnregisteredParam)
	require.Contains(t, err.Error(), `"ghost"`)
	require.Contains(t, err.Error(), `"f"`)
}

func TestRender_UnregisteredKeyword(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "ghost", Kind: KindKeyword},
		},
	}

	_, err := renderer.Render(callable)

	require.ErrorIs(t, err, ErrUnregisteredParam)
	require.Contains(t, err.Error(), "keyword argument")
}

func TestRender_OrdinaryAfterDefaulted(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "kw1", HasDefault: true, Default: cty.StringVal("v")},
			{Name: "x"},
		},
	}

	_, err := renderer.Render(callable)

	require.ErrorIs(t, err, ErrMalformedSignature)
	require.Contains(t, err.Error(), `"x"`)
}

func TestRender_OrdinaryAfterVariadicArgs(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "args", Kind: KindVariadicArgs},
			{Name: "x"},
		},
	}

	_, err := renderer.Render(callable)

	require.ErrorIs(t, err, ErrMalformedSignature)
}

func TestRender_DefaultedAfterVariadicKeywords(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "opts", Kind: KindVariadicKeywords},
			{Name: "kw1", Kind: KindKeyword},
		},
	}

	_, err := renderer.Render(callable)

	require.ErrorIs(t, err, ErrMalformedSignature)
}

func TestRender_DuplicateVariadicCaptures(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)

	_, err := renderer.Render(Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "args", Kind: KindVariadicArgs},
			{Name: "more", Kind: KindVariadicArgs},
		},
	})
	require.ErrorIs(t, err, ErrMalformedSignature)

	_, err = renderer.Render(Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "opts", Kind: KindVariadicKeywords},
			{Name: "extra", Kind: KindVariadicKeywords},
		},
	})
	require.ErrorIs(t, err, ErrMalformedSignature)
}

func TestRender_Variadics(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Accepts anything.",
		Params: []Param{
			{Name: "x"},
			{Name: "args", Kind: KindVariadicArgs},
			{Name: "opts", Kind: KindVariadicKeywords},
		},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	require.Contains(t, got, "*args\n    Variable length argument list.\n")
	require.Contains(t, got, "Keyword Arguments\n-----------------\n**opts\n    Arbitrary keyword arguments.\n")
}

func TestRender_VariadicKeywordsOpensKeywordSection(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Accepts anything.",
		Params: []Param{
			{Name: "opts", Kind: KindVariadicKeywords},
		},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	require.Contains(t, got, "Keyword Arguments\n-----------------\n**opts\n")
	require.NotContains(t, got, "Arguments\n----------\n")
}

func TestRender_IgnoredParams(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)

	// Ignored names never reach the registry lookup, and an ignored
	// defaulted parameter does not poison the ordering state for a later
	// ordinary one.
	callable := Callable{
		Name: "Thing.method",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "self"},
			{Name: "hidden", Kind: KindKeyword},
			{Name: "x"},
		},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	require.NotContains(t, got, "self")
	require.NotContains(t, got, "hidden")
	require.Contains(t, got, "x : int")
}

func TestRender_RaisesInDeclarationOrder(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Raises: []Raise{
			{Name: "ZError", Condition: "Listed first on purpose."},
			{Name: "AError", Condition: "Listed second on purpose."},
		},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	want := "Does nothing." +
		"\n\nRaises\n------\n" +
		"ZError\n    Listed first on purpose.\n" +
		"AError\n    Listed second on purpose.\n" +
		"    \n"
	require.Equal(t, want, got)
}

func TestRender_DeclaredOrderNotRegistryOrder(t *testing.T) {
	t.Parallel()

	reg := registry.New(registry.Options{})
	require.NoError(t, reg.RegisterArgument("b", "int", "second letter", false))
	require.NoError(t, reg.RegisterArgument("a", "int", "first letter", false))
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name:   "f",
		Doc:    "Does nothing.",
		Params: []Param{{Name: "a"}, {Name: "b"}},
	}

	got, err := renderer.Render(callable)

	require.NoError(t, err)
	require.Contains(t, got, "a : int\n    first letter\nb : int\n    second letter\n")
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)
	callable := Callable{
		Name: "f",
		Doc:  "Does nothing.",
		Params: []Param{
			{Name: "x"},
			{Name: "kw1", HasDefault: true, Default: cty.StringVal("Test1")},
		},
	}

	first, err := renderer.Render(callable)
	require.NoError(t, err)
	second, err := renderer.Render(callable)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRender_TrailingMarkerAlwaysPresent(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	renderer := NewRenderer(StyleNumpy, reg)

	got, err := renderer.Render(Callable{Name: "f", Doc: "Does nothing."})

	require.NoError(t, err)
	require.Equal(t, "Does nothing.    \n", got)
}
