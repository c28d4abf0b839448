package print

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/extpoly/internal/concept"
	"github.com/specialistvlad/extpoly/internal/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNum(t *testing.T) {
	t.Parallel()

	testCases := map[float64]string{
		2.0:       "2",
		3:         "3",
		0.5:       "0.5",
		2.25:      "2.25",
		1.0 / 3.0: "0.333333",
		1234567:   "1.23457e+06",
		100000:    "100000",
	}
	for in, want := range testCases {
		assert.Equal(t, want, Num(in), "Num(%v)", in)
	}
}

func TestPrintBehaviors(t *testing.T) {
	t.Parallel()

	c, err := shapes.NewCircle(2.0)
	require.NoError(t, err)
	s, err := shapes.NewSquare(3.0)
	require.NoError(t, err)
	o, err := shapes.NewOval(1.5, 4)
	require.NoError(t, err)

	t.Run("circle", func(t *testing.T) {
		var buf bytes.Buffer
		var sc concept.Concept = concept.New(c, Circle(&buf))
		sc.PerformAction()
		assert.Equal(t, "Rad: 2\n", buf.String())
	})

	t.Run("square", func(t *testing.T) {
		var buf bytes.Buffer
		var sc concept.Concept = concept.New(s, Square(&buf))
		sc.PerformAction()
		assert.Equal(t, "Side: 3\n", buf.String())
	})

	t.Run("oval", func(t *testing.T) {
		var buf bytes.Buffer
		concept.Perform(concept.New(o, Oval(&buf)))
		assert.Equal(t, "Axes: 4 x 1.5\n", buf.String())
	})

	t.Run("model matches direct call", func(t *testing.T) {
		var direct, viaModel bytes.Buffer
		Circle(&direct)(c)
		concept.New(c, Circle(&viaModel)).PerformAction()
		assert.Equal(t, direct.String(), viaModel.String())
	})

	t.Run("sequence keeps order", func(t *testing.T) {
		var buf bytes.Buffer
		seq := concept.Sequence{
			concept.New(c, Circle(&buf)),
			concept.New(s, Square(&buf)),
		}
		seq.PerformAction()
		assert.Equal(t, "Rad: 2\nSide: 3\n", buf.String())
	})
}
