package threadscope_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/threadscope"
)

func TestWithOnDisposeNilPanics(t *testing.T) {
	require.Panics(t, func() { threadscope.WithOnDispose(nil) })
}

func TestWithLoggerNilPanics(t *testing.T) {
	require.Panics(t, func() { threadscope.WithLogger(nil) })
}

func TestDisposeEventJoin(t *testing.T) {
	errBoom := errors.New("boom")

	var events []threadscope.DisposeEvent
	th := threadscope.Start(context.Background(), "joined", func(ctx context.Context) error {
		time.Sleep(30 * time.Millisecond)
		return errBoom
	})

	h := threadscope.Adopt[threadscope.Join](th, threadscope.WithOnDispose(func(e threadscope.DisposeEvent) {
		events = append(events, e)
	}))
	require.ErrorIs(t, h.Close(), errBoom)

	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, "joined", e.Thread.Name)
	assert.Equal(t, th.ID(), e.Thread.ID)
	assert.False(t, e.Detached)
	assert.ErrorIs(t, e.Err, errBoom)
	assert.GreaterOrEqual(t, e.Duration, 10*time.Millisecond, "join blocked for the work's duration")
}

func TestDisposeEventDetach(t *testing.T) {
	gate := make(chan struct{})

	var events []threadscope.DisposeEvent
	th := threadscope.Start(context.Background(), "released", func(ctx context.Context) error {
		<-gate
		return errors.New("never observed")
	})

	h := threadscope.Adopt[threadscope.Detach](th, threadscope.WithOnDispose(func(e threadscope.DisposeEvent) {
		events = append(events, e)
	}))
	require.NoError(t, h.Close())

	require.Len(t, events, 1)
	e := events[0]
	assert.True(t, e.Detached)
	assert.NoError(t, e.Err, "detach never observes the work's outcome")

	close(gate)
	<-th.Done()
}

func TestCloseEmptyHandleFiresNoEvent(t *testing.T) {
	var fired int
	h := threadscope.Adopt[threadscope.Join](nil, threadscope.WithOnDispose(func(threadscope.DisposeEvent) {
		fired++
	}))
	require.NoError(t, h.Close())
	assert.Zero(t, fired)
}

func TestLoggerRecordsFailedWork(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	th := threadscope.Start(context.Background(), "failing", func(ctx context.Context) error {
		return errors.New("disk full")
	}, threadscope.WithLogger(logger))

	err := threadscope.Adopt[threadscope.Join](th).Close()
	require.Error(t, err)

	assert.Contains(t, buf.String(), "thread finished with error")
	assert.Contains(t, buf.String(), "disk full")
}
