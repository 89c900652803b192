package match

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dresiko/media-match-homework/internal/model"
	"github.com/dresiko/media-match-homework/pkg/llm"
)

const (
	// Per-reporter deadline so one slow provider call cannot hold the whole
	// batch hostage; the batch itself has no deadline beyond the request.
	enrichTimeout = 15 * time.Second

	enrichConcurrency = 8
)

// Enricher fills in a justification for every ranked reporter. Requests run
// concurrently and independently; a failed request falls back to locally
// built text and never fails the batch.
type Enricher struct {
	client      llm.JustificationClient
	timeout     time.Duration
	concurrency int
}

func NewEnricher(client llm.JustificationClient) *Enricher {
	return &Enricher{
		client:      client,
		timeout:     enrichTimeout,
		concurrency: enrichConcurrency,
	}
}

// Enrich populates the Justification field of every reporter in place. The
// slice order is fixed by rank before fan-out and is never reordered.
func (e *Enricher) Enrich(ctx context.Context, storyBrief string, reporters []model.ReporterResult) {
	if e.client == nil {
		for i := range reporters {
			reporters[i].Justification = FallbackJustification(reporters[i])
		}
		return
	}

	sem := make(chan struct{}, e.concurrency)
	var wg sync.WaitGroup

	for i := range reporters {
		wg.Add(1)
		go func(r *model.ReporterResult) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			taskCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			text, err := e.client.GenerateJustification(taskCtx, justificationInput(storyBrief, *r))
			if err != nil {
				slog.Warn("justification generation failed, using fallback", "reporter", r.Name, "error", err)
				text = FallbackJustification(*r)
			}
			r.Justification = text
		}(&reporters[i])
	}

	wg.Wait()
}

func justificationInput(storyBrief string, r model.ReporterResult) llm.JustificationInput {
	articles := make([]llm.JustificationArticle, 0, len(r.RecentArticles))
	for _, a := range r.RecentArticles {
		articles = append(articles, llm.JustificationArticle{
			Title:       a.Title,
			PublishedAt: a.PublishedAt,
			Description: a.Description,
		})
	}

	return llm.JustificationInput{
		StoryBrief:   storyBrief,
		ReporterName: r.Name,
		Outlet:       r.Outlet,
		ArticleCount: r.TotalRelevantArticles,
		MatchScore:   r.MatchScore,
		Articles:     articles,
	}
}

// FallbackJustification builds deterministic justification text from local
// data when the text generator is unavailable or fails for one reporter.
func FallbackJustification(r model.ReporterResult) string {
	var points []string

	if r.TotalRelevantArticles > 1 {
		points = append(points, fmt.Sprintf("Wrote %d highly relevant articles", r.TotalRelevantArticles))
	} else {
		points = append(points, "Wrote on highly relevant topic")
	}

	if len(r.RecentArticles) > 0 && !r.RecentArticles[0].PublishedAt.IsZero() {
		daysAgo := int(time.Since(r.RecentArticles[0].PublishedAt).Hours() / 24)
		if daysAgo < 7 {
			points = append(points, "Published relevant coverage within the last week")
		} else if daysAgo < 30 {
			points = append(points, fmt.Sprintf("Recently covered similar topics (%d days ago)", daysAgo))
		}
	}

	points = append(points, "Covers for "+r.Outlet)

	return strings.Join(points, "; ")
}
