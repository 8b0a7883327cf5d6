// Package trafilatura extracts a page's main content with boilerplate
// removed. It backs the last-resort strategy for free-text fields whose
// section markup could not be matched.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/aleksw/profgen"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// MainContent returns the page's main text with navigation, sidebars, and
// other boilerplate stripped. An empty result means the page carried no
// recognizable content, which callers treat as "not found".
func MainContent(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", profgen.Errorf(profgen.EINVALID, "empty document")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.ContentText), nil
}

// MainContentHTML is like MainContent but preserves the content's HTML
// structure, for fields that are converted to markdown afterwards.
func MainContentHTML(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", profgen.Errorf(profgen.EINVALID, "empty document")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}
	if result.ContentNode == nil {
		return "", nil
	}
	return renderNode(result.ContentNode)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
