package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"newsbrief/domain"
)

// ArticleRepository is a hand-rolled testify mock of domain.ArticleRepository.
type ArticleRepository struct {
	mock.Mock
}

var _ domain.ArticleRepository = (*ArticleRepository)(nil)

func (m *ArticleRepository) Fetch(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *ArticleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *ArticleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *ArticleRepository) Store(ctx context.Context, a *domain.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ArticleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ArticleRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	args := m.Called(ctx, id, deltaViews)
	return args.Error(0)
}

func (m *ArticleRepository) UpdateTrendingScores(ctx context.Context, scores map[int64]float64) error {
	args := m.Called(ctx, scores)
	return args.Error(0)
}

func (m *ArticleRepository) FetchNewest(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *ArticleRepository) FetchTopByMetric(ctx context.Context, metric domain.RankMetric, limit int64) ([]domain.Article, error) {
	args := m.Called(ctx, metric, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *ArticleRepository) ToggleLike(ctx context.Context, articleID, userID int64) (bool, error) {
	args := m.Called(ctx, articleID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *ArticleRepository) HasLiked(ctx context.Context, articleID, userID int64) (bool, error) {
	args := m.Called(ctx, articleID, userID)
	return args.Bool(0), args.Error(1)
}

// ArticleUsecase is a testify mock of domain.ArticleUsecase.
type ArticleUsecase struct {
	mock.Mock
}

var _ domain.ArticleUsecase = (*ArticleUsecase)(nil)

func (m *ArticleUsecase) Fetch(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *ArticleUsecase) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *ArticleUsecase) Store(ctx context.Context, a *domain.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ArticleUsecase) Update(ctx context.Context, a *domain.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ArticleUsecase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ArticleUsecase) ToggleLike(ctx context.Context, articleID, userID int64) (bool, error) {
	args := m.Called(ctx, articleID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *ArticleUsecase) IsLiked(ctx context.Context, articleID, userID int64) (bool, error) {
	args := m.Called(ctx, articleID, userID)
	return args.Bool(0), args.Error(1)
}

// TrendingUsecase is a testify mock of domain.TrendingUsecase.
type TrendingUsecase struct {
	mock.Mock
}

var _ domain.TrendingUsecase = (*TrendingUsecase)(nil)

func (m *TrendingUsecase) RecomputeAll(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TrendingUsecase) TopTrending(ctx context.Context, limit int64) ([]domain.Article, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *TrendingUsecase) Newest(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *TrendingUsecase) TopByMetric(ctx context.Context, metric domain.RankMetric, limit int64) ([]domain.Article, error) {
	args := m.Called(ctx, metric, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}
