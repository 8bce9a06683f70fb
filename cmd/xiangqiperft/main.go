// xiangqiperft is a movegen debugging tool: it counts leaf positions reached
// at each depth from a starting position, and can divide the deepest
// depth's count by root move, to localize a move generation bug.
package main

import (
	"context"
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/seekerror/logw"
	"github.com/tranvietanh/xiangqi/pkg/board"
	"golang.org/x/sync/semaphore"
)

var (
	depth       = flag.Int("depth", 4, "Search depth")
	divide      = flag.Bool("divide", false, "Divide the deepest depth's count by root move")
	concurrency = flag.Int64("concurrency", 4, "Max concurrent root move subtrees in divide mode")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	b := board.NewBoard()

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(b, b.Turn(), i, *divide && i == *depth, int(*concurrency))
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v", i, nodes, duration.Microseconds()))
	}

	logw.Infof(ctx, "Done: depth=%v", *depth)
}

// perft counts the leaf positions reachable from b's current position in
// exactly depth plies. In divide mode, each root move's subtree is counted
// on its own board clone, bounded to concurrency workers at a time, and its
// individual count printed.
func perft(b *board.Board, turn board.Color, depth int, d bool, concurrency int) int64 {
	if depth == 0 {
		return 1
	}

	moves := b.LegalMoves(turn)
	if !d {
		var nodes int64
		for _, m := range moves {
			u, err := b.Apply(m)
			if err != nil {
				panic(err)
			}
			nodes += perft(b, turn.Opponent(), depth-1, false, concurrency)
			b.Undo(u)
		}
		return nodes
	}

	sem := semaphore.NewWeighted(int64(concurrency))
	var mu sync.Mutex
	var wg sync.WaitGroup
	var total int64

	for _, m := range moves {
		clone := b.Clone()
		if _, err := clone.Apply(m); err != nil {
			panic(err)
		}

		if err := sem.Acquire(context.Background(), 1); err != nil {
			panic(err)
		}
		wg.Add(1)
		go func(m board.Move, clone *board.Board) {
			defer wg.Done()
			defer sem.Release(1)

			count := perft(clone, turn.Opponent(), depth-1, false, concurrency)

			mu.Lock()
			total += count
			mu.Unlock()

			println(fmt.Sprintf("%v: %v", m, count))
		}(m, clone)
	}
	wg.Wait()
	return total
}
