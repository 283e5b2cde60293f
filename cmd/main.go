package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/baxromumarov/threadscope"
)

func fetch(ctx context.Context) error {
	select {
	case <-time.After(200 * time.Millisecond):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func flaky(ctx context.Context) error {
	return errors.New("flaky failed")
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	now := time.Now()

	g := threadscope.NewGroup[threadscope.Join](
		threadscope.WithOnDispose(func(e threadscope.DisposeEvent) {
			fmt.Printf("disposed %s after %v (err=%v)\n", e.Thread.Name, e.Duration, e.Err)
		}),
	)
	g.Add(threadscope.Start(context.Background(), "fetch-1", fetch, threadscope.WithLogger(logger)))
	g.Add(threadscope.Start(context.Background(), "fetch-2", fetch, threadscope.WithLogger(logger)))
	g.Add(threadscope.Start(context.Background(), "flaky", flaky, threadscope.WithLogger(logger)))

	if err := g.Close(); err != nil {
		fmt.Println("Final error:", err)
	}

	fmt.Println("Elapsed time:", time.Since(now))
}
