package hcl

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/extpoly/internal/config"
	"github.com/specialistvlad/extpoly/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateShape converts a decoded shape block into the agnostic model.
func (l *Loader) translateShape(ctx context.Context, s *shapeBlock, file string) (*config.Item, error) {
	item := &config.Item{
		Kind:     s.Kind,
		Name:     s.Name,
		Behavior: s.Behavior,
		Args:     make(map[string]float64),
		Source:   file,
	}

	if s.Args == nil {
		return item, nil
	}

	attrs, diags := s.Args.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("shape '%s': %w", item.ID(), diags)
	}

	// Sorted so the first bad argument reported is stable.
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		v, err := l.evalNumber(ctx, attrs[name].Expr)
		if err != nil {
			return nil, fmt.Errorf("shape '%s', argument '%s': %w", item.ID(), name, err)
		}
		item.Args[name] = v
	}
	return item, nil
}

// evalNumber evaluates a static expression and converts it to a float64.
func (l *Loader) evalNumber(ctx context.Context, expr hcl.Expression) (float64, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return 0, fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return 0, fmt.Errorf("value must be known")
	}

	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to number: %w", val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(cty.Number) {
		logger.Debug("Implicitly converted value type.", "from", val.Type().FriendlyName(), "to", "number")
	}

	var f float64
	if err := gocty.FromCtyValue(converted, &f); err != nil {
		return 0, err
	}
	return f, nil
}
