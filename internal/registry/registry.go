package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/specialistvlad/extpoly/internal/concept"
	"github.com/specialistvlad/extpoly/internal/ctxlog"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Env carries the sinks a behavior may write to. Behaviors capture what they
// need from it when they are created.
type Env struct {
	Out    io.Writer
	Logger *slog.Logger
}

// RegisteredKind holds the type-erased constructor for one payload kind.
type RegisteredKind struct {
	Kind   string
	Params []string
	Type   reflect.Type

	build func(args map[string]float64) (any, error)
	noop  func(payload any) concept.Concept
}

// RegisteredBehavior holds the type-erased binder for one behavior of a kind.
type RegisteredBehavior struct {
	Kind string
	Name string

	bind func(payload any, env Env) (concept.Concept, error)
}

// Registry holds all registered kinds and behaviors for a single
// application instance.
type Registry struct {
	logger    *slog.Logger
	kinds     map[string]*RegisteredKind
	behaviors map[string]map[string]*RegisteredBehavior
}

// New creates and initializes a new Registry instance. Registration is
// logged through the logger carried by ctx.
func New(ctx context.Context) *Registry {
	return &Registry{
		logger:    ctxlog.FromContext(ctx),
		kinds:     make(map[string]*RegisteredKind),
		behaviors: make(map[string]map[string]*RegisteredBehavior),
	}
}

// RegisterKind registers a payload kind. params lists the numeric arguments
// the factory reads; they are checked by Validate before any factory runs.
func RegisterKind[T any](r *Registry, kind string, params []string, factory func(args map[string]float64) (T, error)) {
	if _, exists := r.kinds[kind]; exists {
		panic(fmt.Sprintf("payload kind '%s' already registered", kind))
	}
	typ := reflect.TypeFor[T]()
	r.logger.Debug("Registering payload kind.", "kind", kind, "type", typ.String())

	r.kinds[kind] = &RegisteredKind{
		Kind:   kind,
		Params: slices.Clone(params),
		Type:   typ,
		build: func(args map[string]float64) (any, error) {
			return factory(args)
		},
		noop: func(payload any) concept.Concept {
			v, _ := payload.(T)
			return concept.New[T](v, nil)
		},
	}
}

// RegisterBehavior registers a behavior for an already registered kind. The
// kind's payload type must be T.
func RegisterBehavior[T any](r *Registry, kind, name string, factory func(env Env) concept.Behavior[T]) {
	k, ok := r.kinds[kind]
	if !ok {
		panic(fmt.Sprintf("behavior '%s' registered for unknown kind '%s'", name, kind))
	}
	if typ := reflect.TypeFor[T](); typ != k.Type {
		panic(fmt.Sprintf("behavior '%s' for kind '%s' expects %s, kind produces %s", name, kind, describeType(typ), describeType(k.Type)))
	}
	if name == "" {
		panic(fmt.Sprintf("behavior for kind '%s' registered without a name", kind))
	}
	if _, exists := r.behaviors[kind][name]; exists {
		panic(fmt.Sprintf("behavior '%s' for kind '%s' already registered", name, kind))
	}
	r.logger.Debug("Registering behavior.", "kind", kind, "name", name)

	if r.behaviors[kind] == nil {
		r.behaviors[kind] = make(map[string]*RegisteredBehavior)
	}
	r.behaviors[kind][name] = &RegisteredBehavior{
		Kind: kind,
		Name: name,
		bind: func(payload any, env Env) (concept.Concept, error) {
			v, ok := payload.(T)
			if !ok {
				return nil, fmt.Errorf("behavior '%s' cannot be applied to %T", name, payload)
			}
			return concept.New(v, factory(env)), nil
		},
	}
}

// describeType names t with its import path, so same-named types from
// different packages can be told apart in messages.
func describeType(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}
	return fmt.Sprintf("%s (%s)", t.String(), t.PkgPath())
}

// Kind returns the registered kind with the given name.
func (r *Registry) Kind(kind string) (*RegisteredKind, bool) {
	k, ok := r.kinds[kind]
	return k, ok
}

// Kinds returns the names of all registered kinds, sorted.
func (r *Registry) Kinds() []string {
	return slices.Sorted(maps.Keys(r.kinds))
}

// Behaviors returns the behavior names registered for kind, sorted.
func (r *Registry) Behaviors(kind string) []string {
	return slices.Sorted(maps.Keys(r.behaviors[kind]))
}

// Bind constructs the payload for kind from args and wraps it, together
// with the named behavior, into a Concept. An empty behavior name yields a
// Concept that does nothing when performed. Payload construction errors are
// returned before any Model is created.
func (r *Registry) Bind(kind, behavior string, args map[string]float64, env Env) (concept.Concept, error) {
	k, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind '%s'", kind)
	}

	var b *RegisteredBehavior
	if behavior != "" {
		b, ok = r.behaviors[kind][behavior]
		if !ok {
			return nil, fmt.Errorf("kind '%s' has no behavior '%s'", kind, behavior)
		}
	}

	payload, err := k.build(args)
	if err != nil {
		return nil, fmt.Errorf("failed to construct %s: %w", kind, err)
	}

	if b == nil {
		return k.noop(payload), nil
	}
	return b.bind(payload, env)
}
