package model

// StoryQuery is the structured story brief submitted by the user. It is
// immutable once submitted; the matcher only ever reads it.
type StoryQuery struct {
	StoryBrief         string
	OutletTypes        []string
	Geography          []string
	TargetPublications string
	Competitors        string
}

// ContactInfo holds contact details for one reporter in the directory.
type ContactInfo struct {
	Name     string
	Email    string
	LinkedIn string
	Twitter  string
}

// ReporterResult is one entry in the final ranked shortlist.
type ReporterResult struct {
	Rank                  int
	Name                  string
	Outlet                string
	MatchScore            int
	Justification         string
	RecentArticles        []ArticleRef
	TotalRelevantArticles int
	Contact               *ContactInfo
}
