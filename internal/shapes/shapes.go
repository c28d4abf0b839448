package shapes

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrInvalidDimension is returned by the constructors when a dimension is
// not a strictly positive finite number.
var ErrInvalidDimension = errors.New("invalid dimension")

func checkDimension[F constraints.Float](name string, v F) error {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrInvalidDimension, name, f)
	}
	return nil
}

// CircleOf is a circle of a given radius, with dimensions of type F.
type CircleOf[F constraints.Float] struct {
	radius F
}

// Circle is the float64 circle used by the scene kinds.
type Circle = CircleOf[float64]

// NewCircleOf returns a circle with the given radius.
func NewCircleOf[F constraints.Float](radius F) (CircleOf[F], error) {
	if err := checkDimension("radius", radius); err != nil {
		return CircleOf[F]{}, err
	}
	return CircleOf[F]{radius: radius}, nil
}

// NewCircle returns a Circle with the given radius.
func NewCircle(radius float64) (Circle, error) {
	return NewCircleOf(radius)
}

func (c CircleOf[F]) Radius() F { return c.radius }

// SquareOf is a square of a given side length.
type SquareOf[F constraints.Float] struct {
	side F
}

// Square is the float64 square used by the scene kinds.
type Square = SquareOf[float64]

// NewSquareOf returns a square with the given side length.
func NewSquareOf[F constraints.Float](side F) (SquareOf[F], error) {
	if err := checkDimension("side", side); err != nil {
		return SquareOf[F]{}, err
	}
	return SquareOf[F]{side: side}, nil
}

// NewSquare returns a Square with the given side length.
func NewSquare(side float64) (Square, error) {
	return NewSquareOf(side)
}

func (s SquareOf[F]) Side() F { return s.side }

// OvalOf is an ellipse described by its two semi-axes.
type OvalOf[F constraints.Float] struct {
	major, minor F
}

// Oval is the float64 ellipse used by the scene kinds.
type Oval = OvalOf[float64]

// NewOvalOf returns an ellipse. The larger of the two semi-axes becomes the
// major one, so argument order does not matter.
func NewOvalOf[F constraints.Float](a, b F) (OvalOf[F], error) {
	if err := checkDimension("major", a); err != nil {
		return OvalOf[F]{}, err
	}
	if err := checkDimension("minor", b); err != nil {
		return OvalOf[F]{}, err
	}
	if b > a {
		a, b = b, a
	}
	return OvalOf[F]{major: a, minor: b}, nil
}

// NewOval returns an Oval.
func NewOval(a, b float64) (Oval, error) {
	return NewOvalOf(a, b)
}

func (o OvalOf[F]) Major() F { return o.major }
func (o OvalOf[F]) Minor() F { return o.minor }
