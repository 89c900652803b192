package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const newsAPIBaseURL = "https://newsapi.org"

var urlPattern = regexp.MustCompile(`https?://\S+`)

type NewsAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Fetch(limit int) ([]Article, error) {
	q := url.Values{}
	q.Set("q", "technology OR startup OR business OR innovation")
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", fmt.Sprintf("%d", limit))
	q.Set("apiKey", c.apiKey)

	resp, err := c.httpClient.Get(newsAPIBaseURL + "/v2/everything?" + q.Encode())
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi fetch: unexpected status %s", resp.Status)
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}
	if raw.Status != "ok" {
		return nil, fmt.Errorf("newsapi fetch: status %q", raw.Status)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		if item.Title == "" || item.URL == "" {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Author:      normalizeAuthor(item.Author),
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			URL:         item.URL,
			SourceID:    item.Source.ID,
			SourceName:  item.Source.Name,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

// normalizeAuthor cleans the free-form byline strings NewsAPI returns: URLs
// stripped, whitespace collapsed, and multi-author lists cut to the first
// name.
func normalizeAuthor(author string) string {
	author = urlPattern.ReplaceAllString(author, "")
	author = strings.TrimSpace(spaceRuns.ReplaceAllString(author, " "))
	if idx := strings.Index(author, ","); idx >= 0 {
		author = strings.TrimSpace(author[:idx])
	}
	return author
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
}
