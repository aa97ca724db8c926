package response

import (
	"newsbrief/domain"
)

const DateTimeFormat = "2006-01-02 15:04:05"

type Article struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Summary       string  `json:"summary"`
	Content       string  `json:"content"`
	Author        string  `json:"author"`
	PublishedAt   string  `json:"published_at"`
	Views         int64   `json:"views"`
	Likes         int64   `json:"likes"`
	Comments      int64   `json:"comments"`
	TrendingScore float64 `json:"trending_score"`
	UpdatedAt     string  `json:"updated_at"`
	CreatedAt     string  `json:"created_at"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		ID:            a.ID,
		Title:         a.Title,
		Summary:       a.Summary,
		Content:       a.Content,
		Author:        a.Author,
		PublishedAt:   a.PublishedAt.Format(DateTimeFormat),
		Views:         a.Views,
		Likes:         a.Likes,
		Comments:      a.Comments,
		TrendingScore: a.TrendingScore,
		UpdatedAt:     a.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:     a.CreatedAt.Format(DateTimeFormat),
	}
}

func NewArticleListFromDomain(articles []domain.Article) []Article {
	res := make([]Article, len(articles))
	for i := range articles {
		res[i] = NewArticleFromDomain(&articles[i])
	}
	return res
}
