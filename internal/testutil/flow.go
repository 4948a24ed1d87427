package testutil

// FixedIDGenerator returns the same run ID every time.
//
// This enables deterministic runner tests and golden snapshot comparison:
// the same request with the same FixedIDGenerator produces byte-identical
// results.
//
// Thread-safety: FixedIDGenerator is stateless after construction and safe
// for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator that always returns id.
// If id is empty, Generate returns "test-run-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed run ID.
//
// Implements runner.IDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
