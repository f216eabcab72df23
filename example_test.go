package blockon_test

import (
	"context"
	"fmt"
	"time"

	"github.com/tsabric/blockon"
)

func Example() {
	// A future that resolves on its second poll, after a timer wakes it.
	// The waker given to Poll is borrowed, so the future clones it and
	// lets the timer spend the clone with Wake.
	var fired bool
	fut := blockon.FutureFunc[int](func(w blockon.Waker) (int, bool) {
		if fired {
			return 42, true
		}
		c := w.Clone()
		time.AfterFunc(10*time.Millisecond, func() {
			fired = true
			c.Wake()
		})
		return 0, false
	})

	// RunParked polls once, parks until the timer wakes it, polls again.
	fmt.Println(blockon.RunParked[int](fut))
	// Output:
	// 42
}

func ExampleRunBusy() {
	fmt.Println(blockon.RunBusy(blockon.Ready(21 * 2)))
	// Output:
	// 42
}

func ExamplePollOnce() {
	fut := blockon.Forever[string]()

	if _, ok := blockon.PollOnce(fut); !ok {
		fmt.Println("still pending")
	}
	// Output:
	// still pending
}

func ExampleSpawnDetached() {
	results := make(chan string, 1)

	blockon.SpawnDetached(context.Background(), "greeter",
		blockon.FutureFunc[string](func(blockon.Waker) (string, bool) {
			results <- "hello from a detached thread"
			return "", true
		}))

	// SpawnDetached returned immediately; the side effect is the only
	// way to observe the detached run.
	fmt.Println(<-results)
	// Output:
	// hello from a detached thread
}
