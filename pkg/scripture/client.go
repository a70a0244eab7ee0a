package scripture

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/versedeck/versedeck/pkg/cache"
	"github.com/versedeck/versedeck/pkg/errors"
	"github.com/versedeck/versedeck/pkg/httputil"
	"github.com/versedeck/versedeck/pkg/observability"
)

const (
	// DefaultBaseURL is the public passage API endpoint.
	DefaultBaseURL = "https://bible-api.com"

	// DefaultTranslation is used when a verse carries no translation.
	DefaultTranslation = "web"

	httpTimeout = 10 * time.Second
)

// Verse is a single verse within a fetched passage.
type Verse struct {
	Book    string `json:"book"`    // Book name (e.g., "John")
	Chapter int    `json:"chapter"` // Chapter number
	Verse   int    `json:"verse"`   // Verse number within the chapter
	Text    string `json:"text"`    // Verse text
}

// Passage holds the text of a fetched reference.
//
// Text is the full passage joined across verses; Verses carries the
// per-verse breakdown for displays that number individual verses.
type Passage struct {
	Reference       string  `json:"reference"`        // Canonical reference as returned by the API
	Translation     string  `json:"translation"`      // Translation identifier (e.g., "web")
	TranslationName string  `json:"translation_name"` // Human-readable translation name
	Text            string  `json:"text"`             // Full passage text
	Verses          []Verse `json:"verses"`           // Per-verse breakdown
}

// Client fetches passages from a bible-api.com compatible endpoint.
// It handles response caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	keyer   cache.Keyer
	ttl     time.Duration
	baseURL string
}

// NewClient creates a passage client with the given cache backend.
//
// Parameters:
//   - backend: Cache backend for response caching (use cache.NewNullCache() for no caching)
//   - cacheTTL: How long responses are cached. Passages never change, so 0
//     (no expiration) is the usual choice.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		cache:   backend,
		keyer:   cache.NewDefaultKeyer(),
		ttl:     cacheTTL,
		baseURL: DefaultBaseURL,
	}
}

// SetBaseURL overrides the API endpoint. Used for self-hosted instances.
// Cached passages are scoped per endpoint, so switching instances never
// serves entries fetched from another one.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimSuffix(u, "/")
	if c.baseURL == DefaultBaseURL {
		c.keyer = cache.NewDefaultKeyer()
		return
	}
	c.keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), "source:"+c.baseURL+":")
}

// Fetch retrieves the passage for a reference in the given translation.
//
// The reference must parse (e.g. "John 3:16", "Psalm 23:1-6"); translation
// defaults to [DefaultTranslation] when empty. If refresh is true, the
// cache is bypassed and a fresh API call is made.
//
// Returns:
//   - the Passage on success (never nil if err is nil)
//   - ErrCodeVerseNotFound if the API has no such passage
//   - ErrCodeNetwork for HTTP failures after retries
func (c *Client) Fetch(ctx context.Context, reference, translation string, refresh bool) (*Passage, error) {
	if err := errors.ValidateReference(reference); err != nil {
		return nil, err
	}
	if translation == "" {
		translation = DefaultTranslation
	}
	if err := errors.ValidateTranslation(translation); err != nil {
		return nil, err
	}

	observability.Fetch().OnFetch(ctx, reference, translation)
	start := time.Now()

	passage, err := c.fetch(ctx, reference, translation, refresh)

	verses := 0
	if passage != nil {
		verses = len(passage.Verses)
	}
	observability.Fetch().OnFetchComplete(ctx, reference, translation, verses, time.Since(start), err)
	return passage, err
}

func (c *Client) fetch(ctx context.Context, reference, translation string, refresh bool) (*Passage, error) {
	key := c.keyer.PassageKey(translation, reference)

	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			var p Passage
			if err := json.Unmarshal(data, &p); err == nil {
				observability.Cache().OnCacheHit(ctx, "passage")
				return &p, nil
			}
			// Unreadable entry; fall through to a live fetch.
			_ = c.cache.Delete(ctx, key)
		}
		observability.Cache().OnCacheMiss(ctx, "passage")
	}

	var resp apiResponse
	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.get(ctx, reference, translation, &resp)
	})
	if err != nil {
		return nil, err
	}

	p := &Passage{
		Reference:       resp.Reference,
		Translation:     resp.TranslationID,
		TranslationName: resp.TranslationName,
		Text:            strings.TrimSpace(resp.Text),
		Verses:          make([]Verse, 0, len(resp.Verses)),
	}
	for _, v := range resp.Verses {
		p.Verses = append(p.Verses, Verse{
			Book:    v.BookName,
			Chapter: v.Chapter,
			Verse:   v.Verse,
			Text:    strings.TrimSpace(v.Text),
		})
	}

	if data, err := json.Marshal(p); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err == nil {
			observability.Cache().OnCacheSet(ctx, "passage", len(data))
		}
	}
	return p, nil
}

func (c *Client) get(ctx context.Context, reference, translation string, v *apiResponse) error {
	u := fmt.Sprintf("%s/%s?translation=%s",
		c.baseURL, url.PathEscape(reference), url.QueryEscape(translation))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &httputil.RetryableError{
			Err: errors.Wrap(errors.ErrCodeNetwork, err, "fetching %s", reference),
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Cap the body to guard against a misbehaving endpoint.
		return json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(v)
	case resp.StatusCode == http.StatusNotFound:
		return errors.New(errors.ErrCodeVerseNotFound, "passage %q not found in translation %q", reference, translation)
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return &httputil.RetryableError{
			Err: errors.New(errors.ErrCodeNetwork, "fetching %s: status %d", reference, resp.StatusCode),
		}
	default:
		return errors.New(errors.ErrCodeNetwork, "fetching %s: status %d", reference, resp.StatusCode)
	}
}

// apiResponse mirrors the bible-api.com response shape.
type apiResponse struct {
	Reference       string `json:"reference"`
	TranslationID   string `json:"translation_id"`
	TranslationName string `json:"translation_name"`
	Text            string `json:"text"`
	Verses          []struct {
		BookName string `json:"book_name"`
		Chapter  int    `json:"chapter"`
		Verse    int    `json:"verse"`
		Text     string `json:"text"`
	} `json:"verses"`
}
