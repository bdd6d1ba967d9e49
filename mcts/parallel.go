package mcts

import (
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Esadruhn/quantikai/game"
)

// RunParallel fans cfg.Processes independent workers out over goroutines
// (the spec's "multi-process" workers, realized here as goroutines since
// Go workers share an address space without needing OS process
// isolation to stay independent). Each worker runs cfg.Iterations/Processes
// iterations against its own board/hand copies and its own freshly seeded
// Randomness, producing a private tree; the driver blocks until every
// worker finishes, then merges the per-worker trees restricted to the
// root's ply depth.
func RunParallel(cfg Config, board *game.Board, currentHand, otherHand *game.Hand, side game.Side) *GameTree {
	perWorker := cfg.Iterations / cfg.Processes
	if perWorker == 0 {
		perWorker = 1
	}
	rootPly := board.OccupancyCount()

	trees := make([]*GameTree, cfg.Processes)
	var g errgroup.Group
	for w := 0; w < cfg.Processes; w++ {
		w := w
		g.Go(func() error {
			workerCfg := cfg
			workerCfg.Randomness = randSource{r: rand.New(rand.NewSource(time.Now().UnixNano() + int64(w)))}

			tree := NewGameTree()
			hands := map[game.Side]*game.Hand{side: currentHand.Clone(), side.Opponent(): otherHand.Clone()}
			for i := 0; i < perWorker; i++ {
				run(tree, board, hands, side, workerCfg)
			}
			trees[w] = tree.Slice(rootPly)
			return nil
		})
	}
	_ = g.Wait()

	return Merge(trees)
}
