package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dresiko/media-match-homework/internal/match"
	"github.com/dresiko/media-match-homework/internal/model"
)

type StoryMatcher interface {
	Match(ctx context.Context, q model.StoryQuery, limit int) (*match.Result, error)
}

type JustificationEnricher interface {
	Enrich(ctx context.Context, storyBrief string, reporters []model.ReporterResult)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type MatchHandler struct {
	matcher  StoryMatcher
	enricher JustificationEnricher
	store    Pinger
}

func NewMatchHandler(matcher StoryMatcher, enricher JustificationEnricher, store Pinger) *MatchHandler {
	return &MatchHandler{matcher: matcher, enricher: enricher, store: store}
}

func (h *MatchHandler) MatchReporters(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("invalid match request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.StoryBrief == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Story brief is required"})
		return
	}

	limit := match.DefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	query := model.StoryQuery{
		StoryBrief:         req.StoryBrief,
		OutletTypes:        req.OutletTypes,
		Geography:          req.Geography,
		TargetPublications: req.TargetPublications,
		Competitors:        req.Competitors,
	}

	result, err := h.matcher.Match(c.Request.Context(), query, limit)
	if err != nil {
		slog.Error("error matching reporters", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to match reporters"})
		return
	}

	if !req.SkipJustifications {
		h.enricher.Enrich(c.Request.Context(), req.StoryBrief, result.Reporters)
	}

	res := MatchResponse{
		Query: QueryEcho{
			StoryBrief:  req.StoryBrief,
			OutletTypes: emptyIfNil(req.OutletTypes),
			Geography:   emptyIfNil(req.Geography),
			KeyTopics:   result.KeyTopics,
		},
		Reporters:             make([]ReporterResponse, 0, len(result.Reporters)),
		TotalArticlesAnalyzed: len(result.Hits),
		SimilarArticles:       make([]SimilarArticleResponse, 0, len(result.Hits)),
	}

	for _, r := range result.Reporters {
		res.Reporters = append(res.Reporters, toReporterResponse(r))
	}
	for _, hit := range result.Hits {
		res.SimilarArticles = append(res.SimilarArticles, SimilarArticleResponse{
			Author:      hit.Metadata.Author,
			Outlet:      hit.Metadata.SourceName,
			Title:       hit.Metadata.Title,
			URL:         hit.Metadata.URL,
			PublishedAt: hit.Metadata.PublishedAt.Format(time.RFC3339),
			Distance:    hit.Distance,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *MatchHandler) JustifyReporters(c *gin.Context) {
	var req JustifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("invalid justify request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.StoryBrief == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Story brief is required"})
		return
	}

	reporters := make([]model.ReporterResult, len(req.Reporters))
	for i, r := range req.Reporters {
		articles := make([]model.ArticleRef, 0, len(r.RecentArticles))
		for _, a := range r.RecentArticles {
			publishedAt, err := time.Parse(time.RFC3339, a.PublishedAt)
			if err != nil {
				publishedAt = time.Time{}
			}
			articles = append(articles, model.ArticleRef{
				Title:       a.Title,
				URL:         a.URL,
				PublishedAt: publishedAt,
				Distance:    a.Distance,
				Description: a.Description,
			})
		}
		reporters[i] = model.ReporterResult{
			Rank:                  i + 1,
			Name:                  r.Name,
			Outlet:                r.Outlet,
			MatchScore:            r.MatchScore,
			RecentArticles:        articles,
			TotalRelevantArticles: r.TotalRelevantArticles,
		}
	}

	h.enricher.Enrich(c.Request.Context(), req.StoryBrief, reporters)

	res := JustifyResponse{Reporters: make([]JustifiedReporter, 0, len(reporters))}
	for _, r := range reporters {
		res.Reporters = append(res.Reporters, JustifiedReporter{
			Name:          r.Name,
			Outlet:        r.Outlet,
			Justification: r.Justification,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *MatchHandler) GetHealth(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":      "unhealthy",
			"vectorStore": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"vectorStore": "connected",
	})
}

func toReporterResponse(r model.ReporterResult) ReporterResponse {
	articles := make([]ArticleRefResponse, 0, len(r.RecentArticles))
	for _, a := range r.RecentArticles {
		articles = append(articles, ArticleRefResponse{
			Title:       a.Title,
			URL:         a.URL,
			PublishedAt: a.PublishedAt.Format(time.RFC3339),
			Distance:    a.Distance,
			Description: a.Description,
		})
	}

	res := ReporterResponse{
		Rank:                  r.Rank,
		Name:                  r.Name,
		Outlet:                r.Outlet,
		MatchScore:            r.MatchScore,
		Justification:         optionalString(r.Justification),
		RecentArticles:        articles,
		TotalRelevantArticles: r.TotalRelevantArticles,
	}
	if r.Contact != nil {
		res.Email = optionalString(r.Contact.Email)
		res.Linkedin = optionalString(r.Contact.LinkedIn)
		res.Twitter = optionalString(r.Contact.Twitter)
	}
	return res
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
