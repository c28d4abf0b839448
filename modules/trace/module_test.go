package trace

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/specialistvlad/extpoly/internal/concept"
	"github.com/specialistvlad/extpoly/internal/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceCircle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	c, err := shapes.NewCircle(2)
	require.NoError(t, err)
	concept.New(c, Circle(logger)).PerformAction()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Shape traced.", entry["msg"])
	assert.Equal(t, "circle", entry["kind"])
	assert.Equal(t, 2.0, entry["radius"])
}

func TestTraceOval(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	o, err := shapes.NewOval(1, 3)
	require.NoError(t, err)
	concept.New(o, Oval(logger)).PerformAction()

	assert.Contains(t, buf.String(), "kind=oval major=3 minor=1")
}
