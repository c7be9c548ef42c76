package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of everything the
// loaders read: the shared parameter vocabulary and the callable specs that
// reference it. Slices preserve declaration order across files.
type Model struct {
	Arguments []*ParamDecl
	Keywords  []*ParamDecl
	Callables []*CallableDecl
}

// Merge appends the contents of other to m, keeping declaration order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Arguments = append(m.Arguments, other.Arguments...)
	m.Keywords = append(m.Keywords, other.Keywords...)
	m.Callables = append(m.Callables, other.Callables...)
}

// ParamDecl is the format-agnostic representation of a single registered
// parameter description, from either the `argument` or `keyword` namespace.
type ParamDecl struct {
	Name        string
	Type        string // display string, already resolved by the loader
	Description string
	Default     *cty.Value // nil when no default was declared
	Force       bool       // allow overwriting an earlier registration
}

// CallableDecl is the format-agnostic representation of a `callable` block:
// a callable's name, its base documentation text, and its declared
// parameter list in signature order.
type CallableDecl struct {
	Name   string
	Doc    string
	Params []*ParamUse
	Raises []*RaiseDecl
}

// ParamUse is one entry in a callable's declared parameter list. It carries
// only what a signature carries: the name, the parameter kind, and an
// optional declared default. Type and description come from the registry.
type ParamUse struct {
	Name    string
	Kind    string // "positional", "keyword", "variadic_args", "variadic_keywords"
	Default *cty.Value
}

// RaiseDecl names an error a callable may raise and the condition under
// which it does so. Order is preserved for deterministic rendering.
type RaiseDecl struct {
	Name      string
	Condition string
}
