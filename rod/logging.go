package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/aleksw/profgen"
)

// Ensure LoggingSession implements profgen.Session.
var _ profgen.Session = (*LoggingSession)(nil)

// LoggingSession wraps a Session with debug logging.
type LoggingSession struct {
	next   profgen.Session
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next profgen.Session, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger}
}

// Navigate logs the URL being visited and delegates to the wrapped session.
func (s *LoggingSession) Navigate(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigate",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url)
}

// CurrentHTML delegates to the wrapped session.
func (s *LoggingSession) CurrentHTML(ctx context.Context) (string, error) {
	return s.next.CurrentHTML(ctx)
}

// Close delegates to the wrapped session.
func (s *LoggingSession) Close() error {
	return s.next.Close()
}
