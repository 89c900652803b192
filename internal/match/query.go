package match

import (
	"strings"

	"github.com/dresiko/media-match-homework/internal/model"
)

// Keyword blocks appended for each outlet-type tag. Checked in this fixed
// order so the composed query is independent of the input tag order; unknown
// tags contribute nothing.
var outletTypeContexts = []struct {
	tag      string
	keywords string
}{
	{"national-business-tech", "technology business innovation enterprise startups venture capital"},
	{"trade-specialist", "industry trade specialist vertical sector analysis"},
	{"regional", "regional local community metro area"},
	{"newsletters", "newsletter subscriber publication analysis"},
	{"podcasts", "podcast audio interview discussion"},
}

// ComposeQueryText builds the search string embedded for a story query. The
// brief appears twice so the embedding weights it more heavily than the
// contextual clauses that follow.
func ComposeQueryText(q model.StoryQuery) string {
	var parts []string

	if q.StoryBrief != "" {
		parts = append(parts, q.StoryBrief, q.StoryBrief)
	}

	if ctx := outletTypeContext(q.OutletTypes); ctx != "" {
		parts = append(parts, ctx)
	}

	if len(q.Geography) > 0 {
		parts = append(parts, "Geographic focus: "+strings.Join(q.Geography, ", "))
	}

	if q.TargetPublications != "" {
		parts = append(parts, "Specific publications to focus on: "+q.TargetPublications)
	}

	if q.Competitors != "" {
		parts = append(parts, "Competitors or other announcements: "+q.Competitors)
	}

	return strings.Join(parts, ", ")
}

func outletTypeContext(tags []string) string {
	selected := make(map[string]bool, len(tags))
	for _, tag := range tags {
		selected[tag] = true
	}

	var contexts []string
	for _, c := range outletTypeContexts {
		if selected[c.tag] {
			contexts = append(contexts, c.keywords)
		}
	}

	return strings.Join(contexts, " ")
}
