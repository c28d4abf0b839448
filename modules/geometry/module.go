// Package geometry registers the shape payload kinds.
package geometry

import (
	"github.com/specialistvlad/extpoly/internal/registry"
	"github.com/specialistvlad/extpoly/internal/shapes"
)

// Kind names as used in scene files.
const (
	KindCircle = "circle"
	KindSquare = "square"
	KindOval   = "oval"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the shape kinds with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterKind(r, KindCircle, []string{"radius"}, func(args map[string]float64) (shapes.Circle, error) {
		return shapes.NewCircle(args["radius"])
	})
	registry.RegisterKind(r, KindSquare, []string{"side"}, func(args map[string]float64) (shapes.Square, error) {
		return shapes.NewSquare(args["side"])
	})
	registry.RegisterKind(r, KindOval, []string{"major", "minor"}, func(args map[string]float64) (shapes.Oval, error) {
		return shapes.NewOval(args["major"], args["minor"])
	})
}
