package docstring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/argdocgo/internal/registry"
)

var (
	// ErrMissingDocstring is returned when a callable has no base
	// documentation text. Rendering never invents a summary.
	ErrMissingDocstring = errors.New("docstring: callable has no documentation text")
	// ErrUnregisteredParam is returned when a non-ignored parameter has no
	// record in the applicable registry namespace.
	ErrUnregisteredParam = errors.New("docstring: parameter not registered")
	// ErrMalformedSignature is returned when the declared parameter order
	// is impossible for a real signature, e.g. an ordinary parameter after
	// a defaulted one.
	ErrMalformedSignature = errors.New("docstring: malformed parameter ordering")
)

// Renderer composes documentation strings in a fixed style against a fixed
// registry. It holds no mutable state; one Renderer may serve any number of
// Render calls.
type Renderer struct {
	style Style
	reg   *registry.Registry
}

// NewRenderer creates a Renderer for the given style and registry.
func NewRenderer(style Style, reg *registry.Registry) *Renderer {
	return &Renderer{style: style, reg: reg}
}

// Style returns the renderer's configured style.
func (r *Renderer) Style() Style {
	return r.style
}

// Render produces the full documentation string for a callable: the trimmed
// base text, an Arguments section, a Keyword Arguments section, a Raises
// section, and the fixed trailing marker line. Sections appear only when
// they have at least one non-ignored entry. Entries follow declared
// signature order, never registry insertion order.
func (r *Renderer) Render(c Callable) (string, error) {
	doc := strings.TrimSpace(c.Doc)
	if doc == "" {
		return "", fmt.Errorf("%w: callable %q", ErrMissingDocstring, c.Name)
	}

	var b strings.Builder
	b.WriteString(doc)

	var hasArgs, hasKeywords, hasVargs, hasVKeywords bool

	for _, p := range c.Params {
		switch {
		case p.Kind == KindPositional && !p.HasDefault:
			if r.reg.IgnoredArgument(p.Name) {
				continue
			}
			if hasKeywords {
				return "", fmt.Errorf("%w: callable %q declares ordinary parameter %q after a defaulted parameter", ErrMalformedSignature, c.Name, p.Name)
			}
			if hasVargs {
				return "", fmt.Errorf("%w: callable %q declares ordinary parameter %q after the variadic positional capture", ErrMalformedSignature, c.Name, p.Name)
			}
			rec, ok := r.reg.LookupArgument(p.Name)
			if !ok {
				return "", fmt.Errorf("%w: positional argument %q of callable %q", ErrUnregisteredParam, p.Name, c.Name)
			}
			if !hasArgs {
				hasArgs = true
				b.WriteString(r.style.argumentHeader())
			}
			b.WriteString(r.style.argumentEntry(p.Name, rec.Type, rec.Description))

		case p.Kind == KindVariadicArgs:
			if r.reg.IgnoredArgument(p.Name) {
				continue
			}
			if hasVargs {
				return "", fmt.Errorf("%w: callable %q declares more than one variadic positional capture", ErrMalformedSignature, c.Name)
			}
			hasVargs = true
			if !hasArgs {
				hasArgs = true
				b.WriteString(r.style.argumentHeader())
			}
			b.WriteString(r.style.variadicArgsEntry(p.Name))

		case p.Kind == KindVariadicKeywords:
			if r.reg.IgnoredKeyword(p.Name) {
				continue
			}
			if hasVKeywords {
				return "", fmt.Errorf("%w: callable %q declares more than one variadic keyword capture", ErrMalformedSignature, c.Name)
			}
			hasVKeywords = true
			if !hasKeywords {
				hasKeywords = true
				b.WriteString(r.style.keywordHeader())
			}
			b.WriteString(r.style.variadicKeywordsEntry(p.Name))

		default: // defaulted: positional with default, or keyword-only
			if r.reg.IgnoredKeyword(p.Name) {
				continue
			}
			if hasVKeywords {
				return "", fmt.Errorf("%w: callable %q declares defaulted parameter %q after the variadic keyword capture", ErrMalformedSignature, c.Name, p.Name)
			}
			rec, ok := r.reg.LookupKeyword(p.Name)
			if !ok {
				return "", fmt.Errorf("%w: keyword argument %q of callable %q", ErrUnregisteredParam, p.Name, c.Name)
			}

			// The registry-declared default wins over the declared one.
			var def string
			hasDefault := false
			switch {
			case rec.Default != nil:
				def = displayValue(*rec.Default)
				hasDefault = true
			case p.HasDefault:
				def = displayValue(p.Default)
				hasDefault = true
			}

			if !hasKeywords {
				hasKeywords = true
				b.WriteString(r.style.keywordHeader())
			}
			b.WriteString(r.style.keywordEntry(p.Name, rec.Type, rec.Description, def, hasDefault))
		}
	}

	if len(c.Raises) > 0 {
		b.WriteString(r.style.raisesHeader())
		for _, raise := range c.Raises {
			b.WriteString(r.style.raiseEntry(raise.Name, raise.Condition))
		}
	}

	// Trailing marker line, always present.
	b.WriteString("    \n")

	return b.String(), nil
}
