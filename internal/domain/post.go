package domain

import "time"

const (
	PostRatingMin     = 1
	PostRatingMax     = 5
	PostRatingDefault = 3

	PostExcerptMaxLen = 300
)

// Post is a chronicle entry. The slug is derived from the title once at
// creation and never recomputed on edit.
type Post struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Content      string     `json:"content"`
	Excerpt      string     `json:"excerpt,omitempty"`
	CoverImage   string     `json:"coverImage,omitempty"`
	Tags         []string   `json:"tags"`
	GoblinRating int        `json:"goblinRating"`
	IsPublished  bool       `json:"isPublished"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
