package vectorstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dresiko/media-match-homework/internal/model"
)

// Client is a minimal REST client to a Qdrant collection of article vectors.
// The collection uses cosine distance; Qdrant reports similarity scores, so
// hits come back with distance = 1 - score.
type Client struct {
	baseURL    string
	apiKey     string
	collection string
	httpClient *http.Client
}

type Config struct {
	URL        string
	APIKey     string
	Collection string
	Timeout    time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// articlePayload is the metadata stored alongside each vector and returned
// inline with every search hit.
type articlePayload struct {
	Author      string `json:"author"`
	SourceName  string `json:"sourceName"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Description string `json:"description"`
}

// EnsureCollection creates the collection when missing. Qdrant treats the
// PUT as idempotent for an existing collection with the same schema.
func (c *Client) EnsureCollection(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid vector dimension %d", dimension)
	}

	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/collections/%s", c.collection), body, nil)
}

// Ping reports whether the collection is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/collections/%s", c.collection), nil, nil)
}

// UpsertArticles stores article vectors with their metadata payloads under
// fresh point IDs.
func (c *Client) UpsertArticles(ctx context.Context, articles []model.ArticleMetadata, vectors [][]float32) error {
	if len(articles) != len(vectors) {
		return fmt.Errorf("articles and vectors length mismatch: %d vs %d", len(articles), len(vectors))
	}

	points := make([]map[string]any, len(articles))
	for i, a := range articles {
		points[i] = map[string]any{
			"id":     uuid.NewString(),
			"vector": vectors[i],
			"payload": articlePayload{
				Author:      a.Author,
				SourceName:  a.SourceName,
				Title:       a.Title,
				URL:         a.URL,
				PublishedAt: a.PublishedAt.Format(time.RFC3339),
				Description: a.Description,
			},
		}
	}

	body := map[string]any{"points": points}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/collections/%s/points?wait=true", c.collection), body, nil)
}

// Search runs a nearest-neighbor query and returns hits with metadata
// inline, ordered most similar first.
func (c *Client) Search(ctx context.Context, vector []float32, topK int) ([]model.ArticleHit, error) {
	if topK <= 0 {
		topK = 10
	}

	req := map[string]any{
		"vector":       vector,
		"limit":        topK,
		"with_payload": true,
	}

	var resp struct {
		Result []struct {
			Score   float64        `json:"score"`
			Payload articlePayload `json:"payload"`
		} `json:"result"`
	}
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/collections/%s/points/search", c.collection), req, &resp); err != nil {
		return nil, err
	}

	hits := make([]model.ArticleHit, 0, len(resp.Result))
	for _, r := range resp.Result {
		publishedAt, err := time.Parse(time.RFC3339, r.Payload.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		hits = append(hits, model.ArticleHit{
			Distance: 1 - r.Score,
			Metadata: model.ArticleMetadata{
				Author:      r.Payload.Author,
				SourceName:  r.Payload.SourceName,
				Title:       r.Payload.Title,
				URL:         r.Payload.URL,
				PublishedAt: publishedAt,
				Description: r.Payload.Description,
			},
		})
	}

	return hits, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("qdrant %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("qdrant %s %s failed: %s", method, path, resp.Status)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
