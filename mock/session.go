// Package mock provides function-field mocks of the profgen interfaces.
package mock

import (
	"context"

	"github.com/aleksw/profgen"
)

var _ profgen.Session = (*Session)(nil)

// Session is a mock implementation of profgen.Session.
type Session struct {
	NavigateFn    func(ctx context.Context, url string) (string, error)
	CurrentHTMLFn func(ctx context.Context) (string, error)
	CloseFn       func() error
}

func (s *Session) Navigate(ctx context.Context, url string) (string, error) {
	return s.NavigateFn(ctx, url)
}

func (s *Session) CurrentHTML(ctx context.Context) (string, error) {
	return s.CurrentHTMLFn(ctx)
}

func (s *Session) Close() error {
	return s.CloseFn()
}
