package docstring

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// ParamKind classifies one entry of a callable's declared parameter list.
type ParamKind int

const (
	// KindPositional is an ordinary parameter; with a declared default it
	// is treated as defaulted instead.
	KindPositional ParamKind = iota
	// KindKeyword is a keyword-only parameter, always treated as defaulted.
	KindKeyword
	// KindVariadicArgs is the lone catch-all positional capture.
	KindVariadicArgs
	// KindVariadicKeywords is the lone catch-all keyword capture.
	KindVariadicKeywords
)

// String returns the manifest spelling of the kind.
func (k ParamKind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindKeyword:
		return "keyword"
	case KindVariadicArgs:
		return "variadic_args"
	case KindVariadicKeywords:
		return "variadic_keywords"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// ParseKind converts a manifest kind string into a ParamKind. An empty
// string means positional, the manifest default.
func ParseKind(s string) (ParamKind, error) {
	switch s {
	case "", "positional":
		return KindPositional, nil
	case "keyword":
		return KindKeyword, nil
	case "variadic_args":
		return KindVariadicArgs, nil
	case "variadic_keywords":
		return KindVariadicKeywords, nil
	default:
		return KindPositional, fmt.Errorf("unknown parameter kind %q", s)
	}
}

// Param is an explicit parameter descriptor: exactly what a signature
// declares, and nothing the registry holds. HasDefault and Default describe
// the callable's own declared default, which the registry's record default
// overrides for documentation purposes.
type Param struct {
	Name       string
	Kind       ParamKind
	HasDefault bool
	Default    cty.Value
}

// Raise names an error condition a callable documents. Raises render in
// declaration order.
type Raise struct {
	Name      string
	Condition string
}

// Callable describes one render target: its identity (used in error
// messages), its base documentation text, and its declared parameter list
// in signature order.
type Callable struct {
	Name   string
	Doc    string
	Params []Param
	Raises []Raise
}
