package imdx11

// config collects construction options.
type config struct {
	name            string
	initialVertices int
	initialIndices  int
}

// Option customizes renderer construction.
type Option func(*config)

// WithRendererName overrides the backend name reported to the GUI library.
func WithRendererName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithInitialCapacity pre-sizes the vertex and index buffers so the first
// frames of a known-large UI avoid growth reallocations. The usual growth
// slack is added on top of both counts.
func WithInitialCapacity(vertices, indices int) Option {
	return func(c *config) {
		c.initialVertices = vertices
		c.initialIndices = indices
	}
}
