// Package config defines the format-agnostic model of a batch of line
// definitions, along with the Loader interface that concrete formats
// implement.
//
// The `config.Model` is the single source of truth for the `executor`
// package. Concrete implementations of the interface, such as for HCL, are
// provided in separate packages.
package config
