package mock

import "github.com/aleksw/profgen"

var _ profgen.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of profgen.Renderer.
type Renderer struct {
	RenderFn func(rec *profgen.ProfileRecord) ([]byte, error)
}

func (r *Renderer) Render(rec *profgen.ProfileRecord) ([]byte, error) {
	return r.RenderFn(rec)
}
