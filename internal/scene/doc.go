// Package scene is the composition layer. It turns a loaded config.Model into
// an ordered concept.Sequence by way of the registry, and dispatches the
// sequence either in order on the calling goroutine or across a bounded
// pool of goroutines.
package scene
