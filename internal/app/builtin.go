package app

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/argdocgo/internal/docstring"
	"github.com/vk/argdocgo/internal/registry"
)

// SelfDocument renders the documentation of argdocgo's own registration and
// rendering API, using the tool itself. It builds a private registry so the
// built-in names can never collide with user registrations.
func SelfDocument(style docstring.Style) (string, error) {
	reg := registry.New(registry.Options{})

	duplicateRaise := docstring.Raise{
		Name:      "DuplicateRegistration",
		Condition: "If a parameter has already been registered under the same name and force is false.",
	}

	registrations := []struct {
		keyword bool
		name    string
		typ     string
		desc    string
		def     *cty.Value
	}{
		{false, "name", "string", "The name of the parameter being registered.", nil},
		{false, "typ", "type or string", "The parameter's type. A type reference uses its canonical short name; anything else uses its string form.", nil},
		{false, "desc", "string", "A description of the parameter.", nil},
		{false, "callable", "Callable", "The callable descriptor whose documentation should be rendered.", nil},
		{true, "def", "any", "The default value shown in documentation. When nil, the default is collected from each callable's own declared default. It never affects call semantics.", nil},
		{true, "force", "bool", "Allow replacing a previously registered parameter.", ptr(cty.False)},
	}
	for _, r := range registrations {
		var err error
		if r.keyword {
			err = reg.RegisterKeyword(r.name, r.typ, r.desc, r.def, false)
		} else {
			err = reg.RegisterArgument(r.name, r.typ, r.desc, false)
		}
		if err != nil {
			return "", fmt.Errorf("failed to self-register built-in parameter docs: %w", err)
		}
	}

	callables := []docstring.Callable{
		{
			Name: "Registry.RegisterArgument",
			Doc:  "Register a positional parameter with a type and a description.",
			Params: []docstring.Param{
				{Name: "name"},
				{Name: "typ"},
				{Name: "desc"},
				{Name: "force", HasDefault: true, Default: cty.False},
			},
			Raises: []docstring.Raise{duplicateRaise},
		},
		{
			Name: "Registry.RegisterKeyword",
			Doc:  "Register a keyword parameter with a type, a description, and optionally the default value to show in documentation.",
			Params: []docstring.Param{
				{Name: "name"},
				{Name: "typ"},
				{Name: "desc"},
				{Name: "def", Kind: docstring.KindKeyword},
				{Name: "force", HasDefault: true, Default: cty.False},
			},
			Raises: []docstring.Raise{duplicateRaise},
		},
		{
			Name: "Renderer.Render",
			Doc:  "Compose the documentation string for a callable from its declared parameter list and the registry contents.",
			Params: []docstring.Param{
				{Name: "callable"},
			},
			Raises: []docstring.Raise{
				{Name: "MissingDocstring", Condition: "If the callable has no base documentation text."},
				{Name: "UnregisteredParameter", Condition: "If a non-ignored parameter has no record in the applicable namespace."},
				{Name: "MalformedSignature", Condition: "If ordinary, defaulted, and variadic parameters appear in an impossible order."},
			},
		},
	}

	renderer := docstring.NewRenderer(style, reg)
	var b strings.Builder
	for _, c := range callables {
		text, err := renderer.Render(c)
		if err != nil {
			return "", fmt.Errorf("failed to self-document %s: %w", c.Name, err)
		}
		fmt.Fprintf(&b, "# %s\n%s\n", c.Name, text)
	}
	return b.String(), nil
}

func ptr(v cty.Value) *cty.Value {
	return &v
}
