package profgen

import "context"

// Session is an authenticated browser session handed to the assembler as a
// scoped resource. Navigation is session-wide and stateful, so callers must
// not navigate concurrently. The owner must call Close on every exit path.
//
// Implementations return EUNAVAILABLE for unreachable pages and
// EUNAUTHORIZED when the session has lost its authentication.
type Session interface {
	// Navigate loads the URL, waits for the page to render, and returns the
	// rendered HTML. The context bounds the wait.
	Navigate(ctx context.Context, url string) (html string, err error)

	// CurrentHTML returns the rendered HTML of the current page without
	// navigating.
	CurrentHTML(ctx context.Context) (string, error)

	// Close releases browser resources.
	Close() error
}
