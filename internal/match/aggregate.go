package match

import (
	"fmt"
	"math"
	"sort"

	"github.com/dresiko/media-match-homework/internal/model"
)

const (
	// DefaultLimit is the shortlist length when the request does not set one.
	DefaultLimit = 15

	recentArticleCount = 3

	// Articles beyond the best one that feed the bonus term. The scoring
	// policy looks at the top 2 articles total; widening this window changes
	// scoring semantics.
	bonusWindow = 1
)

// ContactResolver maps a reporter display name to directory contact details.
// A nil result with a nil error means the reporter is not in the directory.
type ContactResolver interface {
	Resolve(name string) (*model.ContactInfo, error)
}

type reporterAggregate struct {
	name     string
	outlet   string
	articles []model.ArticleRef
	contact  *model.ContactInfo
}

// AggregateReporters groups similarity hits by (author, outlet) identity,
// folds each reporter's articles into a composite score and returns the
// ranked shortlist. Justifications are left empty for the enrichment phase.
// Hits whose author is unknown are dropped entirely.
func AggregateReporters(hits []model.ArticleHit, limit int, resolver ContactResolver) ([]model.ReporterResult, error) {
	byKey := make(map[string]*reporterAggregate)

	// First-seen order; the final sort is stable so ties keep this order.
	var order []*reporterAggregate

	for _, hit := range hits {
		author := hit.Metadata.Author
		if author == "" {
			author = model.UnknownAuthor
		}
		outlet := hit.Metadata.SourceName
		if outlet == "" {
			outlet = model.UnknownAuthor
		}

		if author == model.UnknownAuthor {
			continue
		}

		key := author + "|" + outlet
		agg, ok := byKey[key]
		if !ok {
			agg = &reporterAggregate{name: author, outlet: outlet}
			if resolver != nil {
				info, err := resolver.Resolve(author)
				if err != nil {
					return nil, fmt.Errorf("resolving contact for %q: %w", author, err)
				}
				agg.contact = info
			}
			byKey[key] = agg
			order = append(order, agg)
		}

		agg.articles = append(agg.articles, model.ArticleRef{
			Title:       hit.Metadata.Title,
			URL:         hit.Metadata.URL,
			PublishedAt: hit.Metadata.PublishedAt,
			Distance:    hit.Distance,
			Description: hit.Metadata.Description,
		})
	}

	type scored struct {
		agg           *reporterAggregate
		finalDistance float64
	}

	ranked := make([]scored, 0, len(order))
	for _, agg := range order {
		sort.SliceStable(agg.articles, func(i, j int) bool {
			return agg.articles[i].Distance < agg.articles[j].Distance
		})
		ranked = append(ranked, scored{agg: agg, finalDistance: compositeDistance(agg.articles)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].finalDistance < ranked[j].finalDistance
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}

	results := make([]model.ReporterResult, 0, limit)
	for i := 0; i < limit; i++ {
		agg := ranked[i].agg

		recent := agg.articles
		if len(recent) > recentArticleCount {
			recent = recent[:recentArticleCount]
		}

		results = append(results, model.ReporterResult{
			Rank:                  i + 1,
			Name:                  agg.name,
			Outlet:                agg.outlet,
			MatchScore:            matchScore(ranked[i].finalDistance),
			RecentArticles:        recent,
			TotalRelevantArticles: len(agg.articles),
			Contact:               agg.contact,
		})
	}

	return results, nil
}

// compositeDistance folds a reporter's distance-sorted articles into a single
// effective distance. The best article sets the base score; the second-best
// adds a strongly diminishing bonus (its score squared over 1000), so a
// second article of equal quality is worth at most a few extra points.
// Distances above 1 are not clamped: they push clearly irrelevant reporters
// to the bottom of the ranking.
func compositeDistance(sorted []model.ArticleRef) float64 {
	if len(sorted) == 1 {
		return sorted[0].Distance
	}

	base := (1 - sorted[0].Distance) * 100

	window := sorted[1:]
	if len(window) > bonusWindow {
		window = window[:bonusWindow]
	}

	var bonus float64
	for _, a := range window {
		score := (1 - a.Distance) * 100
		bonus += score * score / 1000
	}

	final := math.Round(base + bonus)
	if final > 100 {
		final = 100
	}
	return 1 - final/100
}

func matchScore(finalDistance float64) int {
	score := int(math.Round((1 - finalDistance) * 100))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
