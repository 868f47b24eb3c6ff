// Package fetch downloads recipe pages and reduces them to plain text for the
// extraction service.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

var (
	// ErrLoginRequired means the page sits behind a login wall; the user has
	// to paste the recipe text instead.
	ErrLoginRequired = errors.New("page requires a login")

	// ErrContentTooShort means the page yielded too little text to plausibly
	// contain a recipe.
	ErrContentTooShort = errors.New("page content too short")
)

// minTextLength is the smallest page text we consider worth sending to the
// extraction service.
const minTextLength = 200

// loginMarkers are lowercase substrings that indicate a Dutch login wall.
var loginMarkers = []string{
	"log in om verder",
	"inloggen om dit recept",
	"maak een account aan om",
	"dit recept is alleen voor leden",
}

type PageFetcher struct {
	client *resty.Client
}

func NewPageFetcher(timeout time.Duration) *PageFetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "kookboek/1.0 (+recipe import)").
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
	return &PageFetcher{client: client}
}

// FetchText downloads a page and returns its visible text. Login walls and
// near-empty pages are reported with sentinel errors so the handler can map
// them to user-facing messages.
func (f *PageFetcher) FetchText(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return "", ErrLoginRequired
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode())
	}

	text := htmlToText(resp.String())

	lower := strings.ToLower(text)
	for _, marker := range loginMarkers {
		if strings.Contains(lower, marker) {
			return "", ErrLoginRequired
		}
	}

	if len(text) < minTextLength {
		return "", ErrContentTooShort
	}
	return text, nil
}

var (
	scriptPattern = regexp.MustCompile(`(?is)<(script|style|noscript)\b.*?</(script|style|noscript)>`)
	breakPattern  = regexp.MustCompile(`(?i)</(p|div|li|h[1-6]|tr|br)>`)
	tagPattern    = regexp.MustCompile(`(?s)<[^>]*>`)
	spacePattern  = regexp.MustCompile(`[ \t]+`)
	blankPattern  = regexp.MustCompile(`\n{3,}`)
)

// htmlToText strips markup down to readable text, keeping line structure so
// numbered instruction steps survive.
func htmlToText(page string) string {
	text := scriptPattern.ReplaceAllString(page, "")
	text = breakPattern.ReplaceAllString(text, "\n")
	text = tagPattern.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = spacePattern.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
