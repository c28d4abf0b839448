// Package registry provides the central "glue" between scene files and Go code.
//
// The Registry stores two kinds of entries, both keyed by the string
// identifiers used in scene files:
//
//   - payload kinds ("circle", "square", ...), each with a factory that turns
//     numeric arguments into a concrete payload value;
//   - behaviors, registered per kind, each with a factory producing a typed
//     concept.Behavior for that kind's payload type.
//
// Both are registered through generic functions. The payload type of a kind
// and the type each behavior expects are compared as reflect.Type values at
// registration time. Once registered, entries are type-erased: Bind returns a
// concept.Concept and callers never see the payload type again.
//
// The set of kinds is fixed when the binary is built; modules register
// everything during startup and the registry is read-only afterwards.
package registry
