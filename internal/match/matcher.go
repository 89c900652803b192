package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/dresiko/media-match-homework/internal/model"
)

// ErrEmptyBrief is returned when a match is attempted without a story brief.
// Callers are expected to reject empty briefs before any provider call.
var ErrEmptyBrief = errors.New("story brief is required")

// How many nearest neighbors to pull per match request. Deep enough that the
// shortlist is not starved after dedup and unknown-author filtering.
const searchTopK = 50

// Embedder turns query text into a fixed-dimension vector.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Searcher runs a nearest-neighbor search over the article index and returns
// hits with article metadata inline.
type Searcher interface {
	Search(ctx context.Context, vector []float32, topK int) ([]model.ArticleHit, error)
}

// Result is the full outcome of one match request.
type Result struct {
	Reporters []model.ReporterResult
	Hits      []model.ArticleHit
	KeyTopics []string
}

// Matcher runs the match pipeline: compose query text, embed it, search the
// article index and aggregate hits into a ranked reporter shortlist.
type Matcher struct {
	embedder Embedder
	searcher Searcher
	resolver ContactResolver
}

func NewMatcher(embedder Embedder, searcher Searcher, resolver ContactResolver) *Matcher {
	return &Matcher{embedder: embedder, searcher: searcher, resolver: resolver}
}

// Match either fully succeeds with a ranked (possibly empty) shortlist or
// fails as a whole; collaborator errors are never partially absorbed.
func (m *Matcher) Match(ctx context.Context, q model.StoryQuery, limit int) (*Result, error) {
	if q.StoryBrief == "" {
		return nil, ErrEmptyBrief
	}

	vector, err := m.embedder.EmbedQuery(ctx, ComposeQueryText(q))
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	hits, err := m.searcher.Search(ctx, vector, searchTopK)
	if err != nil {
		return nil, fmt.Errorf("searching articles: %w", err)
	}

	reporters, err := AggregateReporters(hits, limit, m.resolver)
	if err != nil {
		return nil, err
	}

	return &Result{
		Reporters: reporters,
		Hits:      hits,
		KeyTopics: KeyTopics(q.StoryBrief),
	}, nil
}
