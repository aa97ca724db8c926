package trending

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"newsbrief/domain"
)

const (
	// DefaultTopLimit is used when callers pass a non-positive limit.
	DefaultTopLimit = 10

	// rankSnapshotSize 缓存的榜单长度，大于任何对外暴露的 limit
	rankSnapshotSize = 100
)

// Service is the trending engine: it recomputes the cached per-article
// score on schedule and serves ranked listings, with a redis ZSET snapshot
// in front of the store and singleflight around snapshot rebuilds.
type Service struct {
	articleRepo domain.ArticleRepository
	cache       domain.ArticleCache
	rankGroup   singleflight.Group
}

var _ domain.TrendingUsecase = (*Service)(nil)

// NewService will create a new trending service object
func NewService(a domain.ArticleRepository, c domain.ArticleCache) *Service {
	return &Service{
		articleRepo: a,
		cache:       c,
	}
}

// RecomputeAll rescores every article against now and persists the result.
// The score is a pure function of the counters and the clock, so the pass is
// safe to repeat and to run concurrently with reads.
func (s *Service) RecomputeAll(ctx context.Context, now time.Time) (int64, error) {
	articles, err := s.articleRepo.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	scores := make(map[int64]float64, len(articles))
	for i := range articles {
		a := &articles[i]
		scores[a.ID] = Score(a.Views, a.Likes, a.Comments, a.PublishedAt, now)
	}

	if err := s.articleRepo.UpdateTrendingScores(ctx, scores); err != nil {
		return 0, err
	}

	if err := s.cache.DeleteRank(ctx, domain.RankTrending); err != nil {
		logrus.Warnf("failed to invalidate trending rank cache: %v", err)
	}

	return int64(len(articles)), nil
}

func (s *Service) TopTrending(ctx context.Context, limit int64) ([]domain.Article, error) {
	return s.TopByMetric(ctx, domain.RankTrending, limit)
}

func (s *Service) TopByMetric(ctx context.Context, metric domain.RankMetric, limit int64) ([]domain.Article, error) {
	if !metric.Valid() {
		return nil, domain.ErrBadParamInput
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	entries, err := s.cache.GetRank(ctx, metric, limit)
	if err == nil {
		return s.hydrate(ctx, entries)
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to GetRank from cache: %v", err)
	}

	// 缓存未命中，使用 singleflight 避免并发重建
	result, err, _ := s.rankGroup.Do(string(metric), func() (any, error) {
		return s.rebuildRank(ctx, metric)
	})
	if err != nil {
		return nil, err
	}

	articles := result.([]domain.Article)
	if int64(len(articles)) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (s *Service) Newest(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.cache.GetNewest(ctx)
	if err == nil {
		return articles, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to GetNewest from cache: %v", err)
	}

	articles, err = s.articleRepo.FetchNewest(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetNewest(ctx, articles); err != nil {
		logrus.Warnf("failed to SetNewest to cache: %v", err)
	}
	return articles, nil
}

// rebuildRank loads a fresh snapshot from the store and repopulates the cache.
func (s *Service) rebuildRank(ctx context.Context, metric domain.RankMetric) ([]domain.Article, error) {
	articles, err := s.articleRepo.FetchTopByMetric(ctx, metric, rankSnapshotSize)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RankEntry, len(articles))
	for i := range articles {
		entries[i] = domain.RankEntry{
			ArticleID: articles[i].ID,
			Score:     rankScore(&articles[i], metric),
		}
	}
	if err := s.cache.SetRank(ctx, metric, entries); err != nil {
		logrus.Warnf("failed to SetRank to cache: %v", err)
	}

	return articles, nil
}

// hydrate resolves cached rank entries back to full articles, keeping the
// snapshot order. Articles deleted since the snapshot was taken are skipped.
func (s *Service) hydrate(ctx context.Context, entries []domain.RankEntry) ([]domain.Article, error) {
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.ArticleID
	}

	articles, err := s.articleRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}

	res := make([]domain.Article, 0, len(entries))
	for _, e := range entries {
		if a, ok := byID[e.ArticleID]; ok {
			res = append(res, a)
		}
	}
	return res, nil
}

func rankScore(a *domain.Article, metric domain.RankMetric) float64 {
	switch metric {
	case domain.RankViews:
		return float64(a.Views)
	case domain.RankLikes:
		return float64(a.Likes)
	case domain.RankComments:
		return float64(a.Comments)
	default:
		return a.TrendingScore
	}
}
