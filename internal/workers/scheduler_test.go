package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"newsbrief/domain/mocks"
)

func TestStartRecomputesOnStartup(t *testing.T) {
	mockTrending := new(mocks.TrendingUsecase)
	done := make(chan struct{})
	mockTrending.On("RecomputeAll", mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(mock.Arguments) { close(done) }).
		Return(int64(3), nil).Once()

	s := NewScheduler(mockTrending, nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	finished := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(finished)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("startup recompute never ran")
	}

	cancel()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
	mockTrending.AssertExpectations(t)
}

func TestStartTicksRecompute(t *testing.T) {
	mockTrending := new(mocks.TrendingUsecase)
	ran := make(chan struct{}, 8)
	mockTrending.On("RecomputeAll", mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(mock.Arguments) { ran <- struct{}{} }).
		Return(int64(0), errors.New("store down"))

	s := NewScheduler(mockTrending, nil, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.Start(ctx)

	// startup run plus at least one tick, errors keep the loop alive
	for i := 0; i < 2; i++ {
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatal("recompute tick never fired")
		}
	}
}

func TestUntilNextMidnight(t *testing.T) {
	now := time.Date(2024, 5, 20, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Hour, untilNextMidnight(now))

	startOfDay := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 24*time.Hour, untilNextMidnight(startOfDay))
}
