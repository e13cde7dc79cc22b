// Package hcl_adapter provides the HCL implementation of config.Loader.
// It parses line definition files, evaluates their locals with a small set
// of numeric functions, and decodes every `line` block into a config.Line.
package hcl_adapter
