package analytics

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"newsbrief/domain"
)

const (
	reportTopLimit  = 10
	timestampLayout = "2006-01-02 15:04:05"
)

// Service writes the daily analytics report: one plain-text file per day
// combining the top-10 lists by views, likes and comments.
type Service struct {
	trending  domain.TrendingUsecase
	reportDir string
}

var _ domain.ReportGenerator = (*Service)(nil)

// NewService will create a new analytics service object writing into reportDir.
func NewService(t domain.TrendingUsecase, reportDir string) *Service {
	return &Service{
		trending:  t,
		reportDir: reportDir,
	}
}

func (s *Service) Generate(ctx context.Context, now time.Time) error {
	var topViewed, topLiked, topCommented []domain.Article

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		topViewed, err = s.trending.TopByMetric(ctx, domain.RankViews, reportTopLimit)
		return
	})
	g.Go(func() (err error) {
		topLiked, err = s.trending.TopByMetric(ctx, domain.RankLikes, reportTopLimit)
		return
	})
	g.Go(func() (err error) {
		topCommented, err = s.trending.TopByMetric(ctx, domain.RankComments, reportTopLimit)
		return
	})
	if err := g.Wait(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("===== DAILY ANALYTICS REPORT =====\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format(timestampLayout))

	b.WriteString("--- TOP 10 MOST VIEWED ARTICLES ---\n")
	for i, a := range topViewed {
		fmt.Fprintf(&b, "%d. %s - %d views\n", i+1, a.Title, a.Views)
	}

	b.WriteString("\n--- TOP 10 MOST LIKED ARTICLES ---\n")
	for i, a := range topLiked {
		fmt.Fprintf(&b, "%d. %s - %d likes\n", i+1, a.Title, a.Likes)
	}

	b.WriteString("\n--- TOP 10 MOST COMMENTED ARTICLES ---\n")
	for i, a := range topCommented {
		fmt.Fprintf(&b, "%d. %s - %d comments\n", i+1, a.Title, a.Comments)
	}

	if err := os.MkdirAll(s.reportDir, 0o755); err != nil {
		return err
	}

	fileName := filepath.Join(s.reportDir, "report_"+now.Format("2006-01-02")+".txt")
	if err := os.WriteFile(fileName, []byte(b.String()), 0o644); err != nil {
		return err
	}

	logrus.Infof("daily report generated: %s", fileName)
	return nil
}
