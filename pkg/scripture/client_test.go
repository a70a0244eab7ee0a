package scripture

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/versedeck/versedeck/pkg/cache"
	"github.com/versedeck/versedeck/pkg/errors"
)

func sampleResponse() apiResponse {
	var resp apiResponse
	resp.Reference = "John 3:16"
	resp.TranslationID = "web"
	resp.TranslationName = "World English Bible"
	resp.Text = "For God so loved the world...\n"
	resp.Verses = append(resp.Verses, struct {
		BookName string `json:"book_name"`
		Chapter  int    `json:"chapter"`
		Verse    int    `json:"verse"`
		Text     string `json:"text"`
	}{BookName: "John", Chapter: 3, Verse: 16, Text: "For God so loved the world...\n"})
	return resp
}

func testClient(t *testing.T, serverURL string, backend cache.Cache) *Client {
	t.Helper()
	c := NewClient(backend, 0)
	c.SetBaseURL(serverURL)
	return c
}

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("translation") != "web" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(sampleResponse())
	}))
	defer server.Close()

	c := testClient(t, server.URL, cache.NewNullCache())

	p, err := c.Fetch(context.Background(), "John 3:16", "web", false)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if p.Reference != "John 3:16" {
		t.Errorf("reference = %q, want %q", p.Reference, "John 3:16")
	}
	if p.Translation != "web" {
		t.Errorf("translation = %q, want %q", p.Translation, "web")
	}
	if len(p.Verses) != 1 {
		t.Fatalf("expected 1 verse, got %d", len(p.Verses))
	}
	if p.Verses[0].Book != "John" || p.Verses[0].Chapter != 3 || p.Verses[0].Verse != 16 {
		t.Errorf("unexpected verse metadata: %+v", p.Verses[0])
	}
	if p.Text != "For God so loved the world..." {
		t.Errorf("text not trimmed: %q", p.Text)
	}
}

func TestClient_Fetch_DefaultTranslation(t *testing.T) {
	var gotTranslation string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTranslation = r.URL.Query().Get("translation")
		json.NewEncoder(w).Encode(sampleResponse())
	}))
	defer server.Close()

	c := testClient(t, server.URL, cache.NewNullCache())
	if _, err := c.Fetch(context.Background(), "John 3:16", "", false); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if gotTranslation != DefaultTranslation {
		t.Errorf("translation = %q, want %q", gotTranslation, DefaultTranslation)
	}
}

func TestClient_Fetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := testClient(t, server.URL, cache.NewNullCache())
	_, err := c.Fetch(context.Background(), "Hezekiah 1:1", "web", false)
	if !errors.Is(err, errors.ErrCodeVerseNotFound) {
		t.Errorf("err = %v, want code %s", err, errors.ErrCodeVerseNotFound)
	}
}

func TestClient_Fetch_InvalidReference(t *testing.T) {
	c := testClient(t, "http://unused.invalid", cache.NewNullCache())
	_, err := c.Fetch(context.Background(), "not a reference", "web", false)
	if !errors.Is(err, errors.ErrCodeInvalidReference) {
		t.Errorf("err = %v, want code %s", err, errors.ErrCodeInvalidReference)
	}
}

func TestClient_Fetch_UsesCache(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(sampleResponse())
	}))
	defer server.Close()

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	c := testClient(t, server.URL, backend)

	ctx := context.Background()
	if _, err := c.Fetch(ctx, "John 3:16", "web", false); err != nil {
		t.Fatalf("first Fetch: %v", err)
	}
	if _, err := c.Fetch(ctx, "John 3:16", "web", false); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("API calls = %d, want 1 (second fetch should hit cache)", got)
	}

	// refresh bypasses the cache.
	if _, err := c.Fetch(ctx, "John 3:16", "web", true); err != nil {
		t.Fatalf("refresh Fetch: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("API calls = %d, want 2 after refresh", got)
	}
}

func TestClient_Fetch_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(sampleResponse())
	}))
	defer server.Close()

	c := testClient(t, server.URL, cache.NewNullCache())
	if _, err := c.Fetch(context.Background(), "John 3:16", "web", false); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("API calls = %d, want 2 (one retry)", got)
	}
}
