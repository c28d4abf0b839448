// Package config defines the format-agnostic scene model and the Loader
// interface used to fill it from files.
//
// The `config.Model` is the single source of truth for the `registry` and
// `scene` packages. Concrete loaders, such as the HCL one, live in separate
// packages.
package config
