package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct.
// Likes and Comments are counter snapshots derived from the like relation and
// the comment table; they are filled by the repository on read and never
// written back. TrendingScore is a cache of a pure function of the counters
// and PublishedAt, recomputed on schedule by the trending engine.
type Article struct {
	ID            int64     // Unique identifier for the article
	Title         string    // Article title
	Summary       string    // Short teaser shown on listing pages
	Content       string    // Article body content
	Author        string    // Author display name
	PublishedAt   time.Time // Publication timestamp, ranking input
	Views         int64     // Number of single-article reads
	Likes         int64     // Size of the like relation for this article
	Comments      int64     // Number of comments on this article
	TrendingScore float64   // Cached trending score
	UpdatedAt     time.Time // Last update timestamp
	CreatedAt     time.Time // Creation timestamp
}

// ArticleRepository defines the contract for article data persistence
type ArticleRepository interface {
	// Fetch retrieves every article with like/comment counts filled.
	Fetch(ctx context.Context) ([]Article, error)

	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// GetByIDs retrieves articles by given IDs. Missing IDs are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Article, error)

	// Store creates a new article in the repository.
	Store(ctx context.Context, a *Article) error

	// Update modifies an existing article.
	// Returns ErrNotFound if the article doesn't exist.
	Update(ctx context.Context, a *Article) error

	// Delete removes an article by its ID together with its comments and
	// like rows, in one transaction.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error

	// AddViews increments the view count of an article by deltaViews.
	AddViews(ctx context.Context, id int64, deltaViews int64) error

	// UpdateTrendingScores writes back recomputed scores per article ID.
	UpdateTrendingScores(ctx context.Context, scores map[int64]float64) error

	// FetchNewest retrieves all articles ordered by publish date descending.
	FetchNewest(ctx context.Context) ([]Article, error)

	// FetchTopByMetric retrieves at most limit articles ordered descending
	// by the given rank metric.
	FetchTopByMetric(ctx context.Context, metric RankMetric, limit int64) ([]Article, error)

	// ToggleLike flips the like relation row for (article, user) in one
	// transaction and returns the new state: true if now liked.
	ToggleLike(ctx context.Context, articleID, userID int64) (bool, error)

	// HasLiked reports whether the like relation row exists.
	HasLiked(ctx context.Context, articleID, userID int64) (bool, error)
}

type ArticleUsecase interface {
	Fetch(ctx context.Context) ([]Article, error)
	GetByID(ctx context.Context, id int64) (Article, error)
	Store(ctx context.Context, a *Article) error
	Update(ctx context.Context, a *Article) error
	Delete(ctx context.Context, id int64) error
	ToggleLike(ctx context.Context, articleID, userID int64) (bool, error)
	IsLiked(ctx context.Context, articleID, userID int64) (bool, error)
}
