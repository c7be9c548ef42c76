// Package config defines the format-agnostic configuration model for the
// application, along with the core Loader interface for reading parameter
// manifests and callable spec files from various sources.
//
// The `config.Model` is the single source of truth for the `registry` and
// `app` packages. Concrete implementations of the Loader interface, such as
// for HCL or YAML, are provided in separate packages.
package config
