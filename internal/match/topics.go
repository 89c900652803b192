package match

import "strings"

const maxKeyTopics = 5

// Keywords surfaced back to the user so they can see what the search keyed
// on. Matching is a plain case-insensitive containment check.
var topicKeywords = []string{
	"battery", "silicon", "EV", "electric vehicle", "supply chain", "climate",
	"robotics", "automation", "restaurant", "labor", "AI", "machine learning",
	"fintech", "mortgage", "AWS", "cloud", "infrastructure", "compliance",
	"funding", "seed", "series", "venture", "investment",
	"startup", "technology", "innovation", "breakthrough",
}

// KeyTopics extracts up to five known topics mentioned in the story brief.
func KeyTopics(storyBrief string) []string {
	brief := strings.ToLower(storyBrief)

	var found []string
	for _, keyword := range topicKeywords {
		if strings.Contains(brief, strings.ToLower(keyword)) {
			found = append(found, keyword)
			if len(found) == maxKeyTopics {
				break
			}
		}
	}

	return found
}
