package vectorstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/dresiko/media-match-homework/internal/model"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{URL: srv.URL, Collection: "articles"})
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/collections/articles/points/search", r.URL.Path)

		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, float64(50), req["limit"])
		assert.Equal(t, true, req["with_payload"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": []map[string]interface{}{
				{
					"score": 0.8,
					"payload": map[string]interface{}{
						"author":      "Jane Doe",
						"sourceName":  "The Daily",
						"title":       "Battery breakthrough",
						"url":         "https://example.com/battery",
						"publishedAt": "2026-08-20T10:00:00Z",
						"description": "A new anode design.",
					},
				},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv)

	hits, err := client.Search(context.Background(), []float32{0.1, 0.2}, 50)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(hits))

	h := hits[0]
	if h.Distance < 0.199 || h.Distance > 0.201 {
		t.Fatalf("expected distance 1-score = 0.2, got %f", h.Distance)
	}
	assert.Equal(t, "Jane Doe", h.Metadata.Author)
	assert.Equal(t, "The Daily", h.Metadata.SourceName)
	assert.Equal(t, 2026, h.Metadata.PublishedAt.Year())
}

func TestSearch_BadPublishedAt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": []map[string]interface{}{
				{"score": 0.5, "payload": map[string]interface{}{"author": "Jane Doe", "publishedAt": "not-a-date"}},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv)

	hits, err := client.Search(context.Background(), []float32{0.1}, 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, time.Time{}, hits[0].Metadata.PublishedAt)
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv)

	_, err := client.Search(context.Background(), []float32{0.1}, 10)

	assert.NotEqual(t, nil, err)
}

func TestUpsertArticles(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/collections/articles/points", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("wait"))
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "ok"})
	}))
	defer srv.Close()

	client := newTestClient(srv)

	articles := []model.ArticleMetadata{
		{Author: "Jane Doe", SourceName: "The Daily", Title: "Piece", PublishedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)},
	}
	err := client.UpsertArticles(context.Background(), articles, [][]float32{{0.1, 0.2}})

	assert.Equal(t, nil, err)

	points := captured["points"].([]interface{})
	assert.Equal(t, 1, len(points))

	point := points[0].(map[string]interface{})
	assert.NotEqual(t, "", point["id"])

	payload := point["payload"].(map[string]interface{})
	assert.Equal(t, "Jane Doe", payload["author"])
	assert.Equal(t, "2026-08-20T10:00:00Z", payload["publishedAt"])
}

func TestUpsertArticles_LengthMismatch(t *testing.T) {
	client := NewClient(Config{URL: "http://localhost:6333", Collection: "articles"})

	err := client.UpsertArticles(context.Background(), []model.ArticleMetadata{{Author: "Jane Doe"}}, nil)

	assert.NotEqual(t, nil, err)
}

func TestEnsureCollection(t *testing.T) {
	var captured map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/collections/articles", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "ok"})
	}))
	defer srv.Close()

	client := newTestClient(srv)

	err := client.EnsureCollection(context.Background(), 768)

	assert.Equal(t, nil, err)

	vectors := captured["vectors"].(map[string]interface{})
	assert.Equal(t, float64(768), vectors["size"])
	assert.Equal(t, "Cosine", vectors["distance"])
}

func TestEnsureCollection_InvalidDimension(t *testing.T) {
	client := NewClient(Config{URL: "http://localhost:6333", Collection: "articles"})

	err := client.EnsureCollection(context.Background(), 0)

	assert.NotEqual(t, nil, err)
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv)

	err := client.Ping(context.Background())

	assert.NotEqual(t, nil, err)
}
