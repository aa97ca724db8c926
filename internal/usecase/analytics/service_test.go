package analytics_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsbrief/domain"
	"newsbrief/domain/mocks"
	"newsbrief/internal/usecase/analytics"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 5, 0, time.UTC)

	t.Run("writes the daily file", func(t *testing.T) {
		mockTrending := new(mocks.TrendingUsecase)
		mockTrending.On("TopByMetric", mock.Anything, domain.RankViews, int64(10)).
			Return([]domain.Article{{Title: "alpha", Views: 300}, {Title: "beta", Views: 120}}, nil).Once()
		mockTrending.On("TopByMetric", mock.Anything, domain.RankLikes, int64(10)).
			Return([]domain.Article{{Title: "beta", Likes: 40}}, nil).Once()
		mockTrending.On("TopByMetric", mock.Anything, domain.RankComments, int64(10)).
			Return([]domain.Article{{Title: "alpha", Comments: 12}}, nil).Once()

		dir := t.TempDir()
		s := analytics.NewService(mockTrending, dir)
		err := s.Generate(context.Background(), now)
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "report_2024-05-20.txt"))
		require.NoError(t, err)

		want := "===== DAILY ANALYTICS REPORT =====\n" +
			"Generated on: 2024-05-20 00:00:05\n\n" +
			"--- TOP 10 MOST VIEWED ARTICLES ---\n" +
			"1. alpha - 300 views\n" +
			"2. beta - 120 views\n" +
			"\n--- TOP 10 MOST LIKED ARTICLES ---\n" +
			"1. beta - 40 likes\n" +
			"\n--- TOP 10 MOST COMMENTED ARTICLES ---\n" +
			"1. alpha - 12 comments\n"
		assert.Equal(t, want, string(content))
		mockTrending.AssertExpectations(t)
	})

	t.Run("creates the report directory", func(t *testing.T) {
		mockTrending := new(mocks.TrendingUsecase)
		mockTrending.On("TopByMetric", mock.Anything, mock.Anything, int64(10)).
			Return([]domain.Article{}, nil).Times(3)

		dir := filepath.Join(t.TempDir(), "nested", "reports")
		s := analytics.NewService(mockTrending, dir)
		err := s.Generate(context.Background(), now)
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "report_2024-05-20.txt"))
		assert.NoError(t, err)
	})

	t.Run("ranking failure aborts the report", func(t *testing.T) {
		mockTrending := new(mocks.TrendingUsecase)
		mockTrending.On("TopByMetric", mock.Anything, mock.Anything, int64(10)).
			Return(nil, errors.New("store down"))

		dir := t.TempDir()
		s := analytics.NewService(mockTrending, dir)
		err := s.Generate(context.Background(), now)
		assert.Error(t, err)

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})
}
