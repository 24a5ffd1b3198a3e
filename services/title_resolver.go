package services

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"main/logger"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const (
	resolveTimeout = 5 * time.Second
	maxTitleBody   = 256 << 10 // read cap on fetched markup
)

// TitleResolver fetches a page and pulls its <title> text for bookmarks
// created without one. Strictly best-effort: a single attempt bounded by the
// client timeout, and every failure is reported as "no title found".
type TitleResolver struct {
	client *http.Client
}

func NewTitleResolver() *TitleResolver {
	return &TitleResolver{
		client: &http.Client{Timeout: resolveTimeout},
	}
}

// Resolve returns the trimmed title text, or "" when the page cannot be
// fetched or carries no title. It never returns an error.
func (r *TitleResolver) Resolve(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; notemark/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := r.client.Do(req)
	if err != nil {
		logger.L.Debug("title fetch failed",
			zap.String("url", rawURL),
			zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxTitleBody))
	if err != nil {
		return ""
	}

	title, _ := findTitle(doc)
	return strings.TrimSpace(title)
}

// findTitle walks the parsed document for the first <title> element. The
// first match decides the outcome even when its text is empty.
func findTitle(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			return n.FirstChild.Data, true
		}
		return "", true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title, found := findTitle(c); found {
			return title, true
		}
	}
	return "", false
}
