package model

import "time"

const UnknownAuthor = "Unknown"

// ArticleMetadata is the denormalized article record returned inline with
// every similarity hit. It mirrors the payload stored alongside each vector.
type ArticleMetadata struct {
	Author      string
	SourceName  string
	Title       string
	URL         string
	PublishedAt time.Time
	Description string
}

// ArticleHit is a single similarity-search result. Distance is a cosine
// dissimilarity: 0 means identical, larger means less similar.
type ArticleHit struct {
	Distance float64
	Metadata ArticleMetadata
}

// ArticleRef is one contributing article on a ranked reporter.
type ArticleRef struct {
	Title       string
	URL         string
	PublishedAt time.Time
	Distance    float64
	Description string
}
