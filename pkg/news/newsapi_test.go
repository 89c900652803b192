package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestNewsAPIFetch(t *testing.T) {
	payload := map[string]interface{}{
		"status": "ok",
		"articles": []map[string]interface{}{
			{
				"author":      "Jane Doe",
				"title":       "Startup raises Series A",
				"description": "A funding round.",
				"content":     "Full story body.",
				"url":         "https://example.com/funding",
				"publishedAt": "2026-08-20T10:00:00Z",
				"source": map[string]interface{}{
					"id":   "techcrunch",
					"name": "TechCrunch",
				},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		assert.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(1)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Jane Doe", a.Author)
	assert.Equal(t, "Startup raises Series A", a.Title)
	assert.Equal(t, "techcrunch", a.SourceID)
	assert.Equal(t, "TechCrunch", a.SourceName)
	assert.NotEqual(t, time.Time{}, a.PublishedAt)
}

func TestNewsAPIFetch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "error"})
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "test-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Fetch(1)

	assert.NotEqual(t, nil, err)
}

func TestNormalizeAuthor(t *testing.T) {
	assert.Equal(t, "Jane Doe", normalizeAuthor("Jane Doe"))
	assert.Equal(t, "Jane Doe", normalizeAuthor("Jane Doe, John Roe"))
	assert.Equal(t, "Jane Doe", normalizeAuthor("Jane   Doe https://example.com/profile"))
	assert.Equal(t, "", normalizeAuthor("https://example.com/feed"))
}

func TestEmbeddingText(t *testing.T) {
	a := Article{
		Author:      "Jane Doe",
		Title:       "Battery breakthrough",
		Description: "A new anode design.",
		Content:     "Full body.",
		URL:         "https://example.com/battery",
		SourceID:    "guardian",
		SourceName:  "The Guardian - Technology",
		PublishedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}

	got := a.EmbeddingText()

	want := "Author: Jane Doe " +
		"Title: Battery breakthrough Title: Battery breakthrough " +
		"Description: A new anode design. " +
		"SourceId: guardian " +
		"SourceName: The Guardian - Technology " +
		"Content: Full body. " +
		"PublishedAt: 2026-08-20T10:00:00Z " +
		"Url: https://example.com/battery"
	assert.Equal(t, want, got)
}

func TestEmbeddingText_TruncatesContent(t *testing.T) {
	long := make([]byte, maxContentLength+100)
	for i := range long {
		long[i] = 'x'
	}

	a := Article{Title: "T", Content: string(long)}
	got := a.EmbeddingText()

	if len(got) > maxContentLength+100 {
		t.Fatalf("content not truncated, length %d", len(got))
	}
}
