package model

import (
	"time"

	"newsbrief/domain"
)

type Article struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Summary       string    `gorm:"type:varchar(500)"`
	Content       string    `gorm:"type:longtext;not null"`
	Author        string    `gorm:"type:varchar(100);not null"`
	PublishedAt   time.Time `gorm:"column:published_at;type:datetime"`
	Views         int64     `gorm:"default:0"`
	TrendingScore float64   `gorm:"column:trending_score;default:0"`
	UpdatedAt     time.Time `gorm:"type:datetime"`
	CreatedAt     time.Time `gorm:"type:datetime"`

	// Likes and Comments are COUNT subquery aliases, never stored columns.
	Likes    int64 `gorm:"->;-:migration"`
	Comments int64 `gorm:"->;-:migration"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:            m.ID,
		Title:         m.Title,
		Summary:       m.Summary,
		Content:       m.Content,
		Author:        m.Author,
		PublishedAt:   m.PublishedAt,
		Views:         m.Views,
		Likes:         m.Likes,
		Comments:      m.Comments,
		TrendingScore: m.TrendingScore,
		UpdatedAt:     m.UpdatedAt,
		CreatedAt:     m.CreatedAt,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:            a.ID,
		Title:         a.Title,
		Summary:       a.Summary,
		Content:       a.Content,
		Author:        a.Author,
		PublishedAt:   a.PublishedAt,
		Views:         a.Views,
		TrendingScore: a.TrendingScore,
		UpdatedAt:     a.UpdatedAt,
		CreatedAt:     a.CreatedAt,
	}
}
