package llm

import (
	"strings"
	"testing"
	"time"
)

func TestBuildJustificationPrompt(t *testing.T) {
	input := JustificationInput{
		StoryBrief:   "Battery startup announces Series A",
		ReporterName: "Jane Doe",
		Outlet:       "The Guardian - Technology",
		ArticleCount: 3,
		MatchScore:   83,
		Articles: []JustificationArticle{
			{
				Title:       "New anode designs",
				PublishedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
				Description: "A look at silicon anodes.",
			},
			{
				Title:       "EV supply chains",
				PublishedAt: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	prompt := buildJustificationPrompt(input)

	for _, want := range []string{
		`Story Brief: "Battery startup announces Series A"`,
		"Reporter: Jane Doe",
		"Outlet: The Guardian - Technology",
		"Number of relevant articles: 3",
		`1. "New anode designs" (2026-08-20)`,
		"A look at silicon anodes.",
		`2. "EV supply chains" (2026-08-10)`,
		"No description",
		"Match Score: 83",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildJustificationPrompt_NoArticles(t *testing.T) {
	prompt := buildJustificationPrompt(JustificationInput{
		StoryBrief:   "Launch",
		ReporterName: "Jane Doe",
		Outlet:       "The Daily",
	})

	if !strings.Contains(prompt, "Recent Relevant Articles:") {
		t.Errorf("prompt missing articles section header")
	}
	if strings.Contains(prompt, "No description") {
		t.Errorf("prompt should not list articles when there are none")
	}
}
