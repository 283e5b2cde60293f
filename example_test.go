package threadscope_test

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/baxromumarov/threadscope"
)

func ExampleAdopt() {
	t := threadscope.Start(context.Background(), "greeter", func(ctx context.Context) error {
		fmt.Println("hello from the thread")
		return nil
	})

	h := threadscope.Adopt[threadscope.Join](t)
	if err := h.Close(); err != nil {
		fmt.Println("error:", err)
	}
	fmt.Println("joined")
	// Output:
	// hello from the thread
	// joined
}

func ExampleAdopt_detach() {
	gate := make(chan struct{})
	t := threadscope.Start(context.Background(), "background", func(ctx context.Context) error {
		<-gate
		return nil
	})

	h := threadscope.Adopt[threadscope.Detach](t)
	h.Close()
	fmt.Println("scope exited without waiting")

	close(gate)
	<-t.Done()
	// Output: scope exited without waiting
}

func ExampleGroup() {
	var completed atomic.Int32

	g := threadscope.NewGroup[threadscope.Join]()
	for i := 0; i < 3; i++ {
		g.Add(threadscope.Start(context.Background(), "worker", func(ctx context.Context) error {
			completed.Add(1)
			return nil
		}))
	}

	if err := g.Close(); err != nil {
		fmt.Println("error:", err)
	}
	fmt.Println("completed:", completed.Load())
	// Output: completed: 3
}

func ExampleHandle_Transfer() {
	t1 := threadscope.Start(context.Background(), "short-lived", func(ctx context.Context) error {
		fmt.Println("first thread done")
		return nil
	})
	t2 := threadscope.Start(context.Background(), "replacement", func(ctx context.Context) error {
		return nil
	})

	dst := threadscope.Adopt[threadscope.Join](t1)
	src := threadscope.Adopt[threadscope.Join](t2)

	// Transfer joins the first thread before adopting the second.
	dst.Transfer(src)
	fmt.Println("transferred")
	dst.Close()
	// Output:
	// first thread done
	// transferred
}
