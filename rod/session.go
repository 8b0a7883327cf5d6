// Package rod implements the browser session using Chrome automation.
package rod

import (
	"context"
	"fmt"

	"github.com/aleksw/profgen"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Session implements profgen.Session at compile time.
var _ profgen.Session = (*Session)(nil)

// Session drives a single headless Chrome page. Navigation is stateful and
// session-wide; callers must not navigate concurrently. Close must be called
// on every exit path.
type Session struct {
	browser *rod.Browser
	page    *rod.Page
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	headless bool
	cookies  []*proto.NetworkCookieParam
}

// WithHeadless controls headless mode. Defaults to true.
func WithHeadless(headless bool) SessionOption {
	return func(c *sessionConfig) { c.headless = headless }
}

// WithCookie seeds an authentication cookie before the first navigation.
// Credential material never enters the core; it only passes through here.
func WithCookie(name, value, domain string) SessionOption {
	return func(c *sessionConfig) {
		c.cookies = append(c.cookies, &proto.NetworkCookieParam{
			Name:   name,
			Value:  value,
			Domain: domain,
			Secure: true,
		})
	}
}

// NewSession launches a browser and opens the page used for all navigation.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewSession(opts ...SessionOption) (*Session, error) {
	cfg := &sessionConfig{headless: true}
	for _, opt := range opts {
		opt(cfg)
	}

	l := launcher.New().Headless(cfg.headless)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	if len(cfg.cookies) > 0 {
		if err := browser.SetCookies(cfg.cookies); err != nil {
			_ = browser.Close()
			return nil, fmt.Errorf("setting session cookies: %w", err)
		}
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	return &Session{browser: browser, page: page}, nil
}

// Navigate loads the URL, waits for the page to render, and returns the
// rendered HTML. The context bounds the whole step; a timeout surfaces as
// EUNAVAILABLE so the caller can skip the section instead of failing the run.
func (s *Session) Navigate(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page := s.page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", profgen.Errorf(profgen.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", profgen.Errorf(profgen.EUNAVAILABLE, "waiting for %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", profgen.Errorf(profgen.EUNAVAILABLE, "reading %s: %v", url, err)
	}
	return html, nil
}

// CurrentHTML returns the rendered HTML of the current page.
func (s *Session) CurrentHTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	html, err := s.page.Context(ctx).HTML()
	if err != nil {
		return "", profgen.Errorf(profgen.EUNAVAILABLE, "reading current page: %v", err)
	}
	return html, nil
}

// Close releases browser resources.
func (s *Session) Close() error {
	return s.browser.Close()
}
