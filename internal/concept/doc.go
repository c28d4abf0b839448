// Package concept provides the dispatch core of the application: a single
// capability interface (Concept) and a generic adapter (Model) that binds an
// arbitrary payload value to an externally supplied behavior.
//
// Payload types never implement Concept themselves. Instead a Model[T] is
// built around a value of T together with a Behavior[T], and the Model is
// what gets stored, passed around and invoked. This lets new payload types
// and new behaviors be added independently of each other.
package concept
