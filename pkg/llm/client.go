package llm

import (
	"context"
	"time"
)

// JustificationArticle is one of a reporter's most relevant articles, as
// presented to the text generator.
type JustificationArticle struct {
	Title       string
	PublishedAt time.Time
	Description string
}

// JustificationInput carries the story brief plus one ranked reporter.
type JustificationInput struct {
	StoryBrief   string
	ReporterName string
	Outlet       string
	ArticleCount int
	MatchScore   int
	Articles     []JustificationArticle
}

// Embedder produces fixed-dimension embedding vectors for text.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// JustificationClient generates a short natural-language explanation of why
// a reporter fits a story brief. It fails closed: an empty provider response
// is an error, not an empty justification.
type JustificationClient interface {
	GenerateJustification(ctx context.Context, input JustificationInput) (string, error)
}
