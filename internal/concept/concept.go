package concept

// Concept is the single polymorphic capability shared by every Model,
// regardless of the payload type it wraps.
type Concept interface {
	// PerformAction runs the configured behavior against the wrapped payload.
	PerformAction()
}

// Perform forwards to c.PerformAction. It is the uniform entry point used
// by callers that only know about Concept.
func Perform(c Concept) {
	c.PerformAction()
}

// Sequence is an ordered group of Concepts. It is itself a Concept, so
// sequences can be nested.
type Sequence []Concept

// PerformAction invokes every element in order.
func (s Sequence) PerformAction() {
	for _, c := range s {
		c.PerformAction()
	}
}
