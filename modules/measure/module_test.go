package measure

import (
	"bytes"
	"math"
	"testing"

	"github.com/specialistvlad/extpoly/internal/concept"
	"github.com/specialistvlad/extpoly/internal/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurements(t *testing.T) {
	t.Parallel()

	c, _ := shapes.NewCircle(1)
	s, _ := shapes.NewSquare(3)
	o, _ := shapes.NewOval(2, 2)

	assert.InDelta(t, math.Pi, CircleArea(c), 1e-12)
	assert.InDelta(t, 2*math.Pi, CirclePerimeter(c), 1e-12)
	assert.Equal(t, 9.0, SquareArea(s))
	assert.Equal(t, 12.0, SquarePerimeter(s))
	assert.InDelta(t, 4*math.Pi, OvalArea(o), 1e-12)
	// A circular oval reduces to a circle's circumference.
	assert.InDelta(t, 4*math.Pi, OvalPerimeter(o), 1e-9)
}

func TestBehaviorsDifferOnSamePayload(t *testing.T) {
	t.Parallel()

	s, err := shapes.NewSquare(3)
	require.NoError(t, err)

	var buf bytes.Buffer
	seq := concept.Sequence{
		concept.New(s, Area(&buf, SquareArea)),
		concept.New(s, Perimeter(&buf, SquarePerimeter)),
	}
	seq.PerformAction()

	assert.Equal(t, "Area: 9\nPerimeter: 12\n", buf.String())
}

func TestCircleAreaFormatting(t *testing.T) {
	t.Parallel()

	c, err := shapes.NewCircle(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	concept.New(c, Area(&buf, CircleArea)).PerformAction()
	assert.Equal(t, "Area: 12.5664\n", buf.String())
}
