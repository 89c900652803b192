package handler

type MatchRequest struct {
	StoryBrief         string   `json:"storyBrief"`
	OutletTypes        []string `json:"outletTypes"`
	Geography          []string `json:"geography"`
	TargetPublications string   `json:"targetPublications"`
	Competitors        string   `json:"competitors"`
	Limit              *int     `json:"limit"`
	SkipJustifications bool     `json:"skipJustifications"`
}

type QueryEcho struct {
	StoryBrief  string   `json:"storyBrief"`
	OutletTypes []string `json:"outletTypes"`
	Geography   []string `json:"geography"`
	KeyTopics   []string `json:"keyTopics"`
}

type ArticleRefResponse struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"publishedAt"`
	Distance    float64 `json:"distance"`
	Description string  `json:"description,omitempty"`
}

type ReporterResponse struct {
	Rank                  int                  `json:"rank"`
	Name                  string               `json:"name"`
	Outlet                string               `json:"outlet"`
	MatchScore            int                  `json:"matchScore"`
	Justification         *string              `json:"justification"`
	RecentArticles        []ArticleRefResponse `json:"recentArticles"`
	TotalRelevantArticles int                  `json:"totalRelevantArticles"`
	Email                 *string              `json:"email"`
	Linkedin              *string              `json:"linkedin"`
	Twitter               *string              `json:"twitter"`
}

type SimilarArticleResponse struct {
	Author      string  `json:"author"`
	Outlet      string  `json:"outlet"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"publishedAt"`
	Distance    float64 `json:"distance"`
}

type MatchResponse struct {
	Query                 QueryEcho                `json:"query"`
	Reporters             []ReporterResponse       `json:"reporters"`
	TotalArticlesAnalyzed int                      `json:"totalArticlesAnalyzed"`
	SimilarArticles       []SimilarArticleResponse `json:"similarArticles"`
}

type JustifyReporter struct {
	Name                  string               `json:"name"`
	Outlet                string               `json:"outlet"`
	MatchScore            int                  `json:"matchScore"`
	TotalRelevantArticles int                  `json:"totalRelevantArticles"`
	RecentArticles        []ArticleRefResponse `json:"recentArticles"`
}

type JustifyRequest struct {
	StoryBrief string            `json:"storyBrief"`
	Reporters  []JustifyReporter `json:"reporters"`
}

type JustifiedReporter struct {
	Name          string `json:"name"`
	Outlet        string `json:"outlet"`
	Justification string `json:"justification"`
}

type JustifyResponse struct {
	Reporters []JustifiedReporter `json:"reporters"`
}

type ContactResponse struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Linkedin *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
}
