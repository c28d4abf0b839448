// Package trace provides a "trace" behavior that reports shapes through
// structured logging instead of plain output.
package trace

import (
	"log/slog"

	"github.com/specialistvlad/extpoly/internal/concept"
	"github.com/specialistvlad/extpoly/internal/registry"
	"github.com/specialistvlad/extpoly/internal/shapes"
	"github.com/specialistvlad/extpoly/modules/geometry"
)

// Name is the behavior name used in scene files.
const Name = "trace"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Circle logs the circle's radius at info level.
func Circle(logger *slog.Logger) concept.Behavior[shapes.Circle] {
	return func(c shapes.Circle) {
		logger.Info("Shape traced.", "kind", geometry.KindCircle, "radius", c.Radius())
	}
}

// Square logs the square's side at info level.
func Square(logger *slog.Logger) concept.Behavior[shapes.Square] {
	return func(s shapes.Square) {
		logger.Info("Shape traced.", "kind", geometry.KindSquare, "side", s.Side())
	}
}

// Oval logs the oval's semi-axes at info level.
func Oval(logger *slog.Logger) concept.Behavior[shapes.Oval] {
	return func(o shapes.Oval) {
		logger.Info("Shape traced.", "kind", geometry.KindOval, "major", o.Major(), "minor", o.Minor())
	}
}

// Register registers the trace behaviors with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterBehavior(r, geometry.KindCircle, Name, func(env registry.Env) concept.Behavior[shapes.Circle] {
		return Circle(env.Logger)
	})
	registry.RegisterBehavior(r, geometry.KindSquare, Name, func(env registry.Env) concept.Behavior[shapes.Square] {
		return Square(env.Logger)
	})
	registry.RegisterBehavior(r, geometry.KindOval, Name, func(env registry.Env) concept.Behavior[shapes.Oval] {
		return Oval(env.Logger)
	})
}
