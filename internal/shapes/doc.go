// Package shapes holds the plain geometric value types used as payloads.
// They know nothing about how they are dispatched or drawn.
package shapes
