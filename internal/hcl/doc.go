// Package hcl provides the concrete HCL implementation of the configuration
// Loader interface defined in the `config` package. It is responsible for
// file parsing, HCL-to-model translation, and evaluation of literal default
// values.
package hcl
