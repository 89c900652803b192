package news

import (
	"strings"
	"time"
)

const maxContentLength = 20000

type Article struct {
	Author             string
	Title              string
	Description        string
	Content            string
	URL                string
	SourceID           string
	SourceName         string
	PublishedAt        time.Time
	ContributorBio     string
	ContributorTwitter string
}

type NewsClient interface {
	Fetch(limit int) ([]Article, error)
	Name() string
}

// EmbeddingText flattens the article into the text that gets embedded. The
// title is repeated to weight it above the body, and long content is cut at
// maxContentLength.
func (a Article) EmbeddingText() string {
	parts := make([]string, 0, 12)
	if a.Author != "" {
		parts = append(parts, "Author: "+a.Author)
	}
	if a.Title != "" {
		parts = append(parts, "Title: "+a.Title, "Title: "+a.Title)
	}
	if a.Description != "" {
		parts = append(parts, "Description: "+a.Description)
	}
	if a.SourceID != "" {
		parts = append(parts, "SourceId: "+a.SourceID)
	}
	if a.SourceName != "" {
		parts = append(parts, "SourceName: "+a.SourceName)
	}
	if a.Content != "" {
		content := a.Content
		if len(content) > maxContentLength {
			content = content[:maxContentLength] + "..."
		}
		parts = append(parts, "Content: "+content)
	}
	if a.ContributorBio != "" {
		parts = append(parts, "ContributorBio: "+a.ContributorBio)
	}
	if a.ContributorTwitter != "" {
		parts = append(parts, "ContributorTwitter: "+a.ContributorTwitter)
	}
	if !a.PublishedAt.IsZero() {
		parts = append(parts, "PublishedAt: "+a.PublishedAt.Format(time.RFC3339))
	}
	if a.URL != "" {
		parts = append(parts, "Url: "+a.URL)
	}
	return strings.Join(parts, " ")
}
