// Package measure provides "area" and "perimeter" behaviors for every shape.
// They reuse the same payload types as the print behaviors, showing that
// new behaviors need no change to the shapes.
package measure

import (
	"fmt"
	"io"
	"math"

	"github.com/specialistvlad/extpoly/internal/concept"
	"github.com/specialistvlad/extpoly/internal/registry"
	"github.com/specialistvlad/extpoly/internal/shapes"
	"github.com/specialistvlad/extpoly/modules/geometry"
	prnt "github.com/specialistvlad/extpoly/modules/print"
)

// Behavior names used in scene files.
const (
	AreaName      = "area"
	PerimeterName = "perimeter"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// CircleArea returns πr².
func CircleArea(c shapes.Circle) float64 { return math.Pi * c.Radius() * c.Radius() }
// SquareArea returns the side squared.
func SquareArea(s shapes.Square) float64 { return s.Side() * s.Side() }
// OvalArea returns π times the product of the semi-axes.
func OvalArea(o shapes.Oval) float64     { return math.Pi * o.Major() * o.Minor() }

// CirclePerimeter returns 2πr.
func CirclePerimeter(c shapes.Circle) float64 { return 2 * math.Pi * c.Radius() }
// SquarePerimeter returns four times the side.
func SquarePerimeter(s shapes.Square) float64 { return 4 * s.Side() }

// OvalPerimeter uses Ramanujan's second approximation.
func OvalPerimeter(o shapes.Oval) float64 {
	a, b := o.Major(), o.Minor()
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	return math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}

// reporter turns a measurement into a behavior that prints it with a label.
func reporter[T any](w io.Writer, label string, measure func(T) float64) concept.Behavior[T] {
	return func(v T) {
		fmt.Fprintf(w, "%s: %s\n", label, prnt.Num(measure(v)))
	}
}

// Area prints "Area: <v>" for the value measure returns.
func Area[T any](w io.Writer, measure func(T) float64) concept.Behavior[T] {
	return reporter(w, "Area", measure)
}

// Perimeter prints "Perimeter: <v>" for the value measure returns.
func Perimeter[T any](w io.Writer, measure func(T) float64) concept.Behavior[T] {
	return reporter(w, "Perimeter", measure)
}

func register[T any](r *registry.Registry, kind string, area, perimeter func(T) float64) {
	registry.RegisterBehavior(r, kind, AreaName, func(env registry.Env) concept.Behavior[T] {
		return Area(env.Out, area)
	})
	registry.RegisterBehavior(r, kind, PerimeterName, func(env registry.Env) concept.Behavior[T] {
		return Perimeter(env.Out, perimeter)
	})
}

// Register registers the measurement behaviors with the registry.
func (m *Module) Register(r *registry.Registry) {
	register(r, geometry.KindCircle, CircleArea, CirclePerimeter)
	register(r, geometry.KindSquare, SquareArea, SquarePerimeter)
	register(r, geometry.KindOval, OvalArea, OvalPerimeter)
}
