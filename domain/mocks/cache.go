package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"newsbrief/domain"
)

// ArticleCache is a testify mock of domain.ArticleCache.
type ArticleCache struct {
	mock.Mock
}

var _ domain.ArticleCache = (*ArticleCache)(nil)

func (m *ArticleCache) GetRank(ctx context.Context, metric domain.RankMetric, limit int64) ([]domain.RankEntry, error) {
	args := m.Called(ctx, metric, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankEntry), args.Error(1)
}

func (m *ArticleCache) SetRank(ctx context.Context, metric domain.RankMetric, entries []domain.RankEntry) error {
	args := m.Called(ctx, metric, entries)
	return args.Error(0)
}

func (m *ArticleCache) DeleteRank(ctx context.Context, metric domain.RankMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *ArticleCache) GetNewest(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *ArticleCache) SetNewest(ctx context.Context, articles []domain.Article) error {
	args := m.Called(ctx, articles)
	return args.Error(0)
}

func (m *ArticleCache) DeleteNewest(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
