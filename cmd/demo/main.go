// The demo command schedules two counting routines over a fixed pool and
// drives them to completion, printing the interleaved progress.
package main

import (
	"flag"
	"fmt"

	"github.com/routinekit/routine"
)

func main() {
	capacity := flag.Int("capacity", 4, "pool size, including the main context")
	flag.Parse()

	r := routine.New(*capacity)
	routine.Init(r)

	count := func(id, n int) func() {
		return func() {
			fmt.Printf("routine %d starting\n", id)
			for i := 0; i < n; i++ {
				fmt.Printf("routine: %d counter: %d\n", id, i)
				routine.Yield()
			}
			fmt.Printf("routine %d finished\n", id)
		}
	}

	routine.Go(count(1, 10))
	routine.Go(count(2, 15))

	r.Run()
}
