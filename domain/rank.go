package domain

import (
	"context"
	"time"
)

// RankMetric names a descending article ordering.
type RankMetric string

const (
	RankTrending RankMetric = "trending"
	RankViews    RankMetric = "views"
	RankLikes    RankMetric = "likes"
	RankComments RankMetric = "comments"
)

// Valid reports whether the metric is one of the known orderings.
func (m RankMetric) Valid() bool {
	switch m {
	case RankTrending, RankViews, RankLikes, RankComments:
		return true
	}
	return false
}

// RankEntry is one (article, score) pair of a cached rank snapshot.
type RankEntry struct {
	ArticleID int64
	Score     float64
}

type ArticleCache interface {
	// GetRank reads at most limit entries of a cached rank snapshot,
	// best first. Returns ErrCacheMiss when no snapshot exists.
	GetRank(ctx context.Context, metric RankMetric, limit int64) ([]RankEntry, error)
	// SetRank replaces the rank snapshot for the metric.
	SetRank(ctx context.Context, metric RankMetric, entries []RankEntry) error
	// DeleteRank drops the rank snapshot for the metric.
	DeleteRank(ctx context.Context, metric RankMetric) error

	// GetNewest reads the cached newest-articles listing.
	// Returns ErrCacheMiss when absent.
	GetNewest(ctx context.Context) ([]Article, error)
	SetNewest(ctx context.Context, articles []Article) error
	DeleteNewest(ctx context.Context) error
}

// TrendingUsecase computes and serves the article rankings.
type TrendingUsecase interface {
	// RecomputeAll rescored every article against now and persists the
	// result. Returns the number of articles scored.
	RecomputeAll(ctx context.Context, now time.Time) (int64, error)

	// TopTrending returns at most limit articles by cached trending score
	// descending. Non-positive limits fall back to the default of 10.
	TopTrending(ctx context.Context, limit int64) ([]Article, error)

	// Newest returns all articles by publish timestamp descending.
	Newest(ctx context.Context) ([]Article, error)

	// TopByMetric returns at most limit articles by the metric descending.
	TopByMetric(ctx context.Context, metric RankMetric, limit int64) ([]Article, error)
}
