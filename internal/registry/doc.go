// Package registry holds the shared parameter vocabulary: two independent
// namespaces of parameter records, one for positional arguments and one for
// keyword arguments. The same name may exist in both namespaces, because a
// parameter can be positional in one callable and defaulted in another.
//
// The registry is populated once during startup, either programmatically or
// from loaded manifests, and is read-only afterwards. It performs no internal
// locking; callers sharing a registry across goroutines must serialize
// registration and rendering themselves.
package registry
