// Package print provides the textual "print" behaviors for every shape.
package print

import (
	"fmt"
	"io"
	"strconv"

	"github.com/specialistvlad/extpoly/internal/concept"
	"github.com/specialistvlad/extpoly/internal/registry"
	"github.com/specialistvlad/extpoly/internal/shapes"
	"github.com/specialistvlad/extpoly/modules/geometry"
)

// Name is the behavior name used in scene files.
const Name = "print"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Num formats v with six significant digits and no trailing zeros, so 2.0
// prints as "2" and 1234567 as "1.23457e+06".
func Num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Circle prints "Rad: <radius>".
func Circle(w io.Writer) concept.Behavior[shapes.Circle] {
	return func(c shapes.Circle) {
		fmt.Fprintf(w, "Rad: %s\n", Num(c.Radius()))
	}
}

// Square prints "Side: <side>".
func Square(w io.Writer) concept.Behavior[shapes.Square] {
	return func(s shapes.Square) {
		fmt.Fprintf(w, "Side: %s\n", Num(s.Side()))
	}
}

// Oval prints "Axes: <major> x <minor>".
func Oval(w io.Writer) concept.Behavior[shapes.Oval] {
	return func(o shapes.Oval) {
		fmt.Fprintf(w, "Axes: %s x %s\n", Num(o.Major()), Num(o.Minor()))
	}
}

// Register registers the print behaviors with the registry.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterBehavior(r, geometry.KindCircle, Name, func(env registry.Env) concept.Behavior[shapes.Circle] {
		return Circle(env.Out)
	})
	registry.RegisterBehavior(r, geometry.KindSquare, Name, func(env registry.Env) concept.Behavior[shapes.Square] {
		return Square(env.Out)
	})
	registry.RegisterBehavior(r, geometry.KindOval, Name, func(env registry.Env) concept.Behavior[shapes.Oval] {
		return Oval(env.Out)
	})
}
