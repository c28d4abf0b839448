package testutil

import "github.com/specialistvlad/extpoly/internal/registry"

// ModuleFunc adapts a plain function into a registry.Module, for tests that
// need to register ad-hoc kinds or behaviors.
type ModuleFunc func(r *registry.Registry)

// Register implements the registry.Module interface.
func (f ModuleFunc) Register(r *registry.Registry) {
	f(r)
}
