package shapes

import (
	"math"
	"testing"

	"github.com/specialistvlad/extpoly/internal/concept"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircle(t *testing.T) {
	t.Parallel()

	c, err := NewCircle(2.0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Radius())

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewCircle(bad)
		assert.ErrorIs(t, err, ErrInvalidDimension, "radius %v", bad)
	}
}

func TestNewSquare(t *testing.T) {
	t.Parallel()

	s, err := NewSquare(3.0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.Side())

	_, err = NewSquare(-3)
	require.ErrorIs(t, err, ErrInvalidDimension)
	assert.ErrorContains(t, err, "side must be a positive finite number, got -3")
}

func TestNewOval(t *testing.T) {
	t.Parallel()

	t.Run("axes are ordered", func(t *testing.T) {
		o, err := NewOval(1, 4)
		require.NoError(t, err)
		assert.Equal(t, 4.0, o.Major())
		assert.Equal(t, 1.0, o.Minor())
	})

	t.Run("invalid minor axis", func(t *testing.T) {
		_, err := NewOval(4, 0)
		require.ErrorIs(t, err, ErrInvalidDimension)
		assert.ErrorContains(t, err, "minor")
	})
}

func TestFloat32Shapes(t *testing.T) {
	t.Parallel()

	c, err := NewCircleOf(float32(2.5))
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), c.Radius())

	o, err := NewOvalOf[float32](1, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(3), o.Major())
	assert.Equal(t, float32(1), o.Minor())

	_, err = NewSquareOf(float32(math.Inf(-1)))
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = NewCircleOf(float32(math.NaN()))
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestFloat32ShapeAsPayload(t *testing.T) {
	t.Parallel()

	s, err := NewSquareOf(float32(1.5))
	require.NoError(t, err)

	var got []float32
	var c concept.Concept = concept.New(s, func(s SquareOf[float32]) {
		got = append(got, s.Side()*s.Side())
	})
	c.PerformAction()

	assert.Equal(t, []float32{2.25}, got)
}
