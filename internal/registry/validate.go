package registry

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/extpoly/internal/config"
	"github.com/specialistvlad/extpoly/internal/ctxlog"
)

// Validate performs a strict parity check between a scene model and the
// registered Go code: kinds, behaviors and arguments must all match. Every
// problem found is reported in a single error.
func (r *Registry) Validate(ctx context.Context, model *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]struct{})
	for _, item := range model.Items {
		id := item.ID()
		if _, dup := seen[id]; dup {
			errs = append(errs, fmt.Sprintf("%s: declared more than once", id))
		}
		seen[id] = struct{}{}

		k, ok := r.kinds[item.Kind]
		if !ok {
			errs = append(errs, fmt.Sprintf("%s: unknown kind '%s' (known: %s)", id, item.Kind, strings.Join(r.Kinds(), ", ")))
			continue
		}

		if item.Behavior == "" {
			logger.Warn("Scene item has no behavior and will do nothing.", "item", id)
		} else if _, ok := r.behaviors[item.Kind][item.Behavior]; !ok {
			errs = append(errs, fmt.Sprintf("%s: kind '%s' has no behavior '%s' (known: %s)", id, item.Kind, item.Behavior, strings.Join(r.Behaviors(item.Kind), ", ")))
		}

		for _, p := range k.Params {
			if _, ok := item.Args[p]; !ok {
				errs = append(errs, fmt.Sprintf("%s: missing required argument '%s'", id, p))
			}
		}
		for name := range item.Args {
			if !slices.Contains(k.Params, name) {
				errs = append(errs, fmt.Sprintf("%s: unexpected argument '%s'", id, name))
			}
		}
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return fmt.Errorf("scene validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Scene validation passed.", "items", len(model.Items))
	return nil
}
