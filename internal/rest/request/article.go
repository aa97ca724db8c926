package request

import (
	"time"

	"newsbrief/domain"
)

type Article struct {
	Title       string     `json:"title" validate:"required"`
	Summary     string     `json:"summary" validate:"max=500"`
	Content     string     `json:"content" validate:"required"`
	Author      string     `json:"author" validate:"required"`
	PublishedAt *time.Time `json:"published_at"`
}

// ToDomain: Request -> Domain
func (r *Article) ToDomain() domain.Article {
	a := domain.Article{
		Title:   r.Title,
		Summary: r.Summary,
		Content: r.Content,
		Author:  r.Author,
	}
	if r.PublishedAt != nil {
		a.PublishedAt = *r.PublishedAt
	}
	return a
}
