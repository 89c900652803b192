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

const guardianBaseURL = "https://content.guardianapis.com"

var (
	htmlTags  = regexp.MustCompile(`<[^>]*>`)
	spaceRuns = regexp.MustCompile(`\s+`)
)

// sectionNames maps Guardian sections to the outlet name we index under.
var sectionNames = map[string]string{
	"US news":    "The Guardian - US News",
	"World news": "The Guardian - World News",
}

type GuardianClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewGuardianClient(apiKey string) *GuardianClient {
	return &GuardianClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GuardianClient) Name() string {
	return "Guardian"
}

// Fetch pulls the latest Guardian content with contributor tags. Results
// without a byline, body, or title are skipped since they cannot be matched
// to a reporter.
func (c *GuardianClient) Fetch(limit int) ([]Article, error) {
	q := url.Values{}
	q.Set("api-key", c.apiKey)
	q.Set("page-size", fmt.Sprintf("%d", limit))
	q.Set("show-fields", "body,byline")
	q.Set("show-tags", "contributor")
	q.Set("order-by", "newest")

	resp, err := c.httpClient.Get(guardianBaseURL + "/search?" + q.Encode())
	if err != nil {
		return nil, fmt.Errorf("guardian fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("guardian fetch: unexpected status %s", resp.Status)
	}

	var raw guardianResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("guardian decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Response.Results))
	for _, item := range raw.Response.Results {
		contributor := firstContributor(item.Tags)
		if contributor == nil || item.Fields.Body == "" || item.WebTitle == "" {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, item.WebPublicationDate)
		if err != nil {
			publishedAt = time.Time{}
		}

		content := stripHTML(item.Fields.Body)

		articles = append(articles, Article{
			Author:             contributor.WebTitle,
			Title:              item.WebTitle,
			Description:        extractDescription(content),
			Content:            content,
			URL:                item.WebURL,
			SourceID:           "guardian",
			SourceName:         guardianSourceName(item.SectionName),
			PublishedAt:        publishedAt,
			ContributorBio:     stripHTML(contributor.Bio),
			ContributorTwitter: contributor.TwitterHandle,
		})
	}

	return articles, nil
}

func firstContributor(tags []guardianTag) *guardianTag {
	for i := range tags {
		if tags[i].Type == "contributor" {
			return &tags[i]
		}
	}
	return nil
}

func guardianSourceName(section string) string {
	if section == "" {
		return "The Guardian"
	}
	if name, ok := sectionNames[section]; ok {
		return name
	}
	return "The Guardian - " + section
}

func stripHTML(s string) string {
	s = htmlTags.ReplaceAllString(s, " ")
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s, " "))
}

func extractDescription(content string) string {
	if len(content) <= 250 {
		return content
	}
	return content[:250] + "..."
}

type guardianResponse struct {
	Response struct {
		Results []guardianResult `json:"results"`
	} `json:"response"`
}

type guardianResult struct {
	WebTitle           string `json:"webTitle"`
	WebURL             string `json:"webUrl"`
	SectionName        string `json:"sectionName"`
	WebPublicationDate string `json:"webPublicationDate"`
	Fields             struct {
		Body   string `json:"body"`
		Byline string `json:"byline"`
	} `json:"fields"`
	Tags []guardianTag `json:"tags"`
}

type guardianTag struct {
	Type          string `json:"type"`
	WebTitle      string `json:"webTitle"`
	Bio           string `json:"bio"`
	TwitterHandle string `json:"twitterHandle"`
}
