package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bate-papo/mocks"
)

func TestSweeperWorker_InvokesSweepOnEveryTick(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registryMock := mocks.NewMockIRegistryService(ctrl)
	threshold := 10 * time.Millisecond

	swept := make(chan struct{}, 10)
	registryMock.EXPECT().
		Sweep(gomock.Any(), threshold).
		DoAndReturn(func(now time.Time, th time.Duration) ([]string, error) {
			swept <- struct{}{}
			return []string{"Alice"}, nil
		}).
		MinTimes(2)

	worker := NewSweeperWorker(
		registryMock, 20*time.Millisecond, threshold,
		logs.GetLoggerFromLevel(slog.LevelDebug),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Two ticks observed, then stop
	<-swept
	<-swept
	cancel()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("Sweeper should have stopped on cancel")
	}
}

func TestSweeperWorker_SurvivesSweepFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registryMock := mocks.NewMockIRegistryService(ctrl)

	calls := make(chan struct{}, 10)
	registryMock.EXPECT().
		Sweep(gomock.Any(), gomock.Any()).
		DoAndReturn(func(now time.Time, th time.Duration) ([]string, error) {
			calls <- struct{}{}
			return nil, context.DeadlineExceeded
		}).
		MinTimes(2)

	worker := NewSweeperWorker(
		registryMock, 20*time.Millisecond, 10*time.Millisecond,
		logs.GetLoggerFromLevel(slog.LevelDebug),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// A failing cycle must not kill the loop: a second tick still happens
	<-calls
	<-calls
	cancel()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("Sweeper should have stopped on cancel")
	}
}
