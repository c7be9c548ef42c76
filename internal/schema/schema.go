// Package schema defines the HCL block structures for parameter manifests
// and callable spec files. These structs are decoding targets for gohcl and
// are translated into the format-agnostic config model by the hcl package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// --- Parameter Manifest Schemas ---

// ArgumentDef represents an `argument` block: a shared description for a
// parameter used positionally, without a default.
type ArgumentDef struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description"`
	Force       bool           `hcl:"force,optional"`
}

// KeywordDef represents a `keyword` block: a shared description for a
// defaulted or keyword-only parameter, optionally carrying the default value
// to show in documentation.
type KeywordDef struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description"`
	Default     hcl.Expression `hcl:"default,optional"`
	Force       bool           `hcl:"force,optional"`
}

// --- Callable Spec Schemas ---

// ParamUse is one `param` block inside a callable: a reference to a
// registered parameter, in signature position.
type ParamUse struct {
	Name    string         `hcl:"name,label"`
	Kind    string         `hcl:"kind,optional"`
	Default hcl.Expression `hcl:"default,optional"`
}

// RaiseDef is one `raises` block inside a callable.
type RaiseDef struct {
	Name      string `hcl:"name,label"`
	Condition string `hcl:"condition"`
}

// CallableDef represents a `callable` block: the callable's identity, its
// base documentation text, and its declared parameter list in order.
type CallableDef struct {
	Name   string      `hcl:"name,label"`
	Doc    string      `hcl:"doc"`
	Params []*ParamUse `hcl:"param,block"`
	Raises []*RaiseDef `hcl:"raises,block"`
}

// File represents the top-level structure of any argdocgo HCL file.
// Parameter manifests and callable specs may be mixed freely; the split
// into separate directories is a convention, not a requirement.
type File struct {
	Arguments []*ArgumentDef `hcl:"argument,block"`
	Keywords  []*KeywordDef  `hcl:"keyword,block"`
	Callables []*CallableDef `hcl:"callable,block"`
	Body      hcl.Body       `hcl:",remain"`
}
