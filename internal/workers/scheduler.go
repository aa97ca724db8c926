package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"newsbrief/domain"
)

// Scheduler drives the two maintenance tasks: the hourly trending recompute
// and the daily analytics report. Both run inline on a single goroutine, so
// a task can never overlap another run of itself; they overlap freely with
// request handlers.
type Scheduler struct {
	trending       domain.TrendingUsecase
	reports        domain.ReportGenerator
	recomputeEvery time.Duration
}

func NewScheduler(t domain.TrendingUsecase, r domain.ReportGenerator, recomputeEvery time.Duration) *Scheduler {
	return &Scheduler{
		trending:       t,
		reports:        r,
		recomputeEvery: recomputeEvery,
	}
}

// Start blocks until ctx is cancelled. Run it on its own goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	// run once at startup so a fresh process serves ranked data immediately
	s.recompute(ctx)

	ticker := time.NewTicker(s.recomputeEvery)
	defer ticker.Stop()

	reportTimer := time.NewTimer(untilNextMidnight(time.Now()))
	defer reportTimer.Stop()

	for {
		select {
		case <-ticker.C:
			s.recompute(ctx)
		case <-reportTimer.C:
			s.report(ctx)
			reportTimer.Reset(untilNextMidnight(time.Now()))
		case <-ctx.Done():
			logrus.Info("shutting down scheduler")
			return
		}
	}
}

func (s *Scheduler) recompute(ctx context.Context) {
	count, err := s.trending.RecomputeAll(ctx, time.Now())
	if err != nil {
		logrus.Errorf("trending recompute failed: %v", err)
		return
	}
	logrus.Infof("recomputed trending scores for %d articles", count)
}

// report is best effort: a failed report never aborts the recompute loop.
func (s *Scheduler) report(ctx context.Context) {
	if err := s.reports.Generate(ctx, time.Now()); err != nil {
		logrus.Errorf("daily report generation failed: %v", err)
	}
}

func untilNextMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return next.Sub(now)
}
