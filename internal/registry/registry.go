package registry

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrEmptyName is returned when an empty parameter name is provided.
	ErrEmptyName = errors.New("registry: empty parameter name provided")
	// ErrDuplicateRegistration indicates an attempt to register a name that
	// already exists in the target namespace without force.
	ErrDuplicateRegistration = errors.New("registry: parameter already registered")
)

// Namespace labels used in error messages.
const (
	namespaceArgument = "positional argument"
	namespaceKeyword  = "keyword argument"
)

// Record is a single registered parameter description. Type is a display
// string; Default, when non-nil, takes precedence over any default declared
// by a callable's own signature (documentation only, never call semantics).
type Record struct {
	Type        string
	Description string
	Default     *cty.Value
}

// Options configures a Registry instance.
type Options struct {
	// IgnoreArgs lists positional parameter names excluded from rendered
	// documentation regardless of registry contents (e.g. receivers).
	IgnoreArgs []string
	// IgnoreKeywords lists keyword parameter names excluded likewise.
	IgnoreKeywords []string
}

// Registry is the in-memory store of parameter records.
type Registry struct {
	arguments map[string]*Record
	keywords  map[string]*Record

	ignoreArgs     map[string]struct{}
	ignoreKeywords map[string]struct{}
}

// New creates an empty Registry configured with the given ignore sets.
func New(opts Options) *Registry {
	return &Registry{
		arguments:      make(map[string]*Record),
		keywords:       make(map[string]*Record),
		ignoreArgs:     toSet(opts.IgnoreArgs),
		ignoreKeywords: toSet(opts.IgnoreKeywords),
	}
}

// RegisterArgument registers a positional parameter with a type and a
// description. Registering an existing name without force fails with
// ErrDuplicateRegistration; with force the later registration wins.
func (r *Registry) RegisterArgument(name string, typ any, desc string, force bool) error {
	return r.register(r.arguments, namespaceArgument, name, typ, desc, nil, force)
}

// RegisterKeyword registers a keyword parameter with a type, a description,
// and optionally the default value to show in documentation. When def is
// nil, the default is collected from each decorated callable's own declared
// default instead.
func (r *Registry) RegisterKeyword(name string, typ any, desc string, def *cty.Value, force bool) error {
	return r.register(r.keywords, namespaceKeyword, name, typ, desc, def, force)
}

func (r *Registry) register(store map[string]*Record, namespace, name string, typ any, desc string, def *cty.Value, force bool) error {
	if name == "" {
		return fmt.Errorf("%w (%s)", ErrEmptyName, namespace)
	}
	if _, exists := store[name]; exists && !force {
		return fmt.Errorf("%w: %s %q", ErrDuplicateRegistration, namespace, name)
	}
	store[name] = &Record{
		Type:        DisplayName(typ),
		Description: desc,
		Default:     def,
	}
	return nil
}

// LookupArgument returns a copy of the record for a positional parameter.
// Returning a copy keeps the stored record immutable when the renderer
// back-fills a discovered default.
func (r *Registry) LookupArgument(name string) (Record, bool) {
	return lookup(r.arguments, name)
}

// LookupKeyword returns a copy of the record for a keyword parameter.
func (r *Registry) LookupKeyword(name string) (Record, bool) {
	return lookup(r.keywords, name)
}

func lookup(store map[string]*Record, name string) (Record, bool) {
	rec, ok := store[name]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// IgnoredArgument reports whether a positional parameter name is excluded
// from documentation.
func (r *Registry) IgnoredArgument(name string) bool {
	_, ok := r.ignoreArgs[name]
	return ok
}

// IgnoredKeyword reports whether a keyword parameter name is excluded from
// documentation.
func (r *Registry) IgnoredKeyword(name string) bool {
	_, ok := r.ignoreKeywords[name]
	return ok
}

// Counts returns the number of registered records per namespace.
func (r *Registry) Counts() (arguments, keywords int) {
	return len(r.arguments), len(r.keywords)
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
