// Package docstring renders "Arguments / Keyword Arguments / Raises"
// documentation blocks for callables whose parameters are described in a
// shared registry.
//
// The renderer is a pure function of its inputs: the callable descriptor
// (name, base documentation text, ordered parameter list), the registry
// contents, and the configured style. Rendering the same callable twice
// against the same registry yields byte-identical output. Attaching the
// rendered text to anything is the caller's concern.
package docstring
