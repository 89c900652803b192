package llm

import (
	"fmt"
	"strings"
)

const justificationSystemPrompt = "You are a PR expert analyzing reporter matches. Provide concise, professional justifications."

const justificationMaxTokens = 150

func buildJustificationPrompt(input JustificationInput) string {
	var sb strings.Builder

	sb.WriteString("You are analyzing why a journalist is a good match for a PR pitch.\n\n")
	fmt.Fprintf(&sb, "Story Brief: %q\n\n", input.StoryBrief)
	fmt.Fprintf(&sb, "Reporter: %s\n", input.ReporterName)
	fmt.Fprintf(&sb, "Outlet: %s\n", input.Outlet)
	fmt.Fprintf(&sb, "Number of relevant articles: %d\n\n", input.ArticleCount)

	sb.WriteString("Recent Relevant Articles:\n")
	for i, a := range input.Articles {
		description := a.Description
		if description == "" {
			description = "No description"
		}
		fmt.Fprintf(&sb, "%d. %q (%s)\n   %s\n\n", i+1, a.Title, a.PublishedAt.Format("2006-01-02"), description)
	}

	fmt.Fprintf(&sb, "Match Score: %d\n\n", input.MatchScore)

	sb.WriteString("Task: Write a concise, professional 1-2 sentence justification explaining why this reporter is a possible match for the story brief. Focus on:\n")
	sb.WriteString("- Their coverage history and expertise\n")
	sb.WriteString("- Relevance of their recent work\n")
	sb.WriteString("- Timeliness of their coverage\n")
	sb.WriteString("- Their outlet's reach\n\n")
	sb.WriteString("Keep it factual and specific. Do not use bullet points or special formatting.")

	return sb.String()
}
