// Package hcl provides the concrete HCL implementation of config.Loader.
// It is responsible for file discovery, parsing, and translating `shape`
// blocks into the format-agnostic scene model, using cty to evaluate and
// convert argument expressions.
package hcl
