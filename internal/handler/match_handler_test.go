package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/dresiko/media-match-homework/internal/match"
	"github.com/dresiko/media-match-homework/internal/model"
)

type fakeMatcher struct {
	result *match.Result
	err    error
	limit  int
	query  model.StoryQuery
}

func (f *fakeMatcher) Match(ctx context.Context, q model.StoryQuery, limit int) (*match.Result, error) {
	f.query = q
	f.limit = limit
	return f.result, f.err
}

type fakeEnricher struct {
	called bool
	brief  string
}

func (f *fakeEnricher) Enrich(ctx context.Context, storyBrief string, reporters []model.ReporterResult) {
	f.called = true
	f.brief = storyBrief
	for i := range reporters {
		reporters[i].Justification = "Justified " + reporters[i].Name
	}
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func newMatchRouter(matcher StoryMatcher, enricher JustificationEnricher, pinger Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewMatchHandler(matcher, enricher, pinger)
	r.POST("/api/reporters/match", h.MatchReporters)
	r.POST("/api/reporters/justify", h.JustifyReporters)
	r.GET("/health", h.GetHealth)
	return r
}

func matchResult() *match.Result {
	return &match.Result{
		Reporters: []model.ReporterResult{
			{
				Rank:                  1,
				Name:                  "Jane Doe",
				Outlet:                "The Daily",
				MatchScore:            83,
				TotalRelevantArticles: 2,
				RecentArticles:        []model.ArticleRef{{Title: "Piece", Distance: 0.2}},
				Contact:               &model.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
			},
		},
		Hits: []model.ArticleHit{
			{Distance: 0.2, Metadata: model.ArticleMetadata{Author: "Jane Doe", SourceName: "The Daily", Title: "Piece"}},
			{Distance: 0.5, Metadata: model.ArticleMetadata{Author: "Unknown", SourceName: "The Daily", Title: "Other"}},
		},
		KeyTopics: []string{"battery"},
	}
}

func TestMatchReporters_Success(t *testing.T) {
	matcher := &fakeMatcher{result: matchResult()}
	enricher := &fakeEnricher{}
	r := newMatchRouter(matcher, enricher, &fakePinger{})

	body := `{"storyBrief": "battery launch", "outletTypes": ["national-business-tech"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reporters/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, enricher.called)
	assert.Equal(t, match.DefaultLimit, matcher.limit)

	var res MatchResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "battery launch", res.Query.StoryBrief)
	assert.Equal(t, []string{"battery"}, res.Query.KeyTopics)
	assert.Equal(t, 1, len(res.Reporters))
	assert.Equal(t, "Jane Doe", res.Reporters[0].Name)
	assert.Equal(t, 83, res.Reporters[0].MatchScore)
	assert.Equal(t, "jane@example.com", *res.Reporters[0].Email)
	assert.Equal(t, "Justified Jane Doe", *res.Reporters[0].Justification)
	assert.Equal(t, 2, res.TotalArticlesAnalyzed)
	assert.Equal(t, 2, len(res.SimilarArticles))
}

func TestMatchReporters_MissingBrief(t *testing.T) {
	r := newMatchRouter(&fakeMatcher{}, &fakeEnricher{}, &fakePinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reporters/match", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Story brief is required", res["error"])
}

func TestMatchReporters_MatcherError(t *testing.T) {
	r := newMatchRouter(&fakeMatcher{err: errors.New("embedding provider down")}, &fakeEnricher{}, &fakePinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reporters/match", strings.NewReader(`{"storyBrief": "launch"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMatchReporters_SkipJustifications(t *testing.T) {
	enricher := &fakeEnricher{}
	r := newMatchRouter(&fakeMatcher{result: matchResult()}, enricher, &fakePinger{})

	body := `{"storyBrief": "launch", "skipJustifications": true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reporters/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, enricher.called)

	var res MatchResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	if res.Reporters[0].Justification != nil {
		t.Fatalf("expected null justification, got %q", *res.Reporters[0].Justification)
	}
}

func TestMatchReporters_ExplicitLimit(t *testing.T) {
	matcher := &fakeMatcher{result: &match.Result{}}
	r := newMatchRouter(matcher, &fakeEnricher{}, &fakePinger{})

	body := `{"storyBrief": "launch", "limit": 3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reporters/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, matcher.limit)
}

func TestJustifyReporters_Success(t *testing.T) {
	enricher := &fakeEnricher{}
	r := newMatchRouter(&fakeMatcher{}, enricher, &fakePinger{})

	body := `{
		"storyBrief": "battery launch",
		"reporters": [
			{"name": "Jane Doe", "outlet": "The Daily", "matchScore": 83, "totalRelevantArticles": 2,
			 "recentArticles": [{"title": "Piece", "publishedAt": "2026-08-20T10:00:00Z", "distance": 0.2}]}
		]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reporters/justify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "battery launch", enricher.brief)

	var res JustifyResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Reporters))
	assert.Equal(t, "Jane Doe", res.Reporters[0].Name)
	assert.Equal(t, "Justified Jane Doe", res.Reporters[0].Justification)
}

func TestJustifyReporters_MissingBrief(t *testing.T) {
	r := newMatchRouter(&fakeMatcher{}, &fakeEnricher{}, &fakePinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/reporters/justify", strings.NewReader(`{"reporters": []}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHealth_Healthy(t *testing.T) {
	r := newMatchRouter(&fakeMatcher{}, &fakeEnricher{}, &fakePinger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "connected", res["vectorStore"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	r := newMatchRouter(&fakeMatcher{}, &fakeEnricher{}, &fakePinger{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "unhealthy", res["status"])
}
