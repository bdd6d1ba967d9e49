// Package bot is the engine surface: the three operations a host calls to
// get a decision, dispatching between MCTS and minimax via a Selector and
// optionally answering from a pre-computed tree slice.
package bot

import (
	"errors"

	"k8s.io/klog/v2"

	"github.com/Esadruhn/quantikai/game"
	"github.com/Esadruhn/quantikai/mcts"
	"github.com/Esadruhn/quantikai/minimax"
)

// Engine is the front door described in the external interfaces: three
// operations, each optionally backed by a directory of pre-computed MCTS
// tree slices.
type Engine struct {
	Selector  Selector
	MCTS      mcts.Config
	TreeDir   string
}

// NewEngine returns an Engine with the default selector and MCTS
// configuration; TreeDir is empty (no pre-computed tree lookups).
func NewEngine() *Engine {
	return &Engine{Selector: DefaultSelector}
}

// BestMove returns the move the engine recommends for current's side to
// play on board, given both hands. ok is false if current has no legal
// move at all (a loss for current).
func (e *Engine) BestMove(board *game.Board, current, other *game.Hand, side game.Side) (game.Move, bool) {
	tree, ok := e.precomputedTree(board, side)
	if ok {
		if m, found := tree.BestMove(board.Freeze()); found {
			return m, true
		}
		// The slice exists but has nothing for this exact board: fall
		// through to live search rather than report a false loss.
	}

	switch e.Selector(board, current, other) {
	case StrategyMCTS:
		return mcts.NewEngine(e.MCTS).BestMove(board, current, other, side)
	default:
		searcher := minimax.NewSearcher()
		hands := map[game.Side]*game.Hand{side: current, side.Opponent(): other}
		m, ok, _ := searcher.BestMove(board, hands, side)
		return m, ok
	}
}

// PrincipalVariation returns up to depth moves following the engine's own
// recommendations from board, as seen through a freshly-run (or
// pre-computed) MCTS tree.
func (e *Engine) PrincipalVariation(board *game.Board, current, other *game.Hand, side game.Side, depth int) []game.Move {
	tree := e.treeForQuery(board, current, other, side)
	return tree.PrincipalVariation(board, depth)
}

// MoveStats returns the statistics of the children reached after
// following the principal variation of the given depth from board.
func (e *Engine) MoveStats(board *game.Board, current, other *game.Hand, side game.Side, depth int) []mcts.MoveStat {
	tree := e.treeForQuery(board, current, other, side)
	return tree.MoveStats(board, depth)
}

func (e *Engine) treeForQuery(board *game.Board, current, other *game.Hand, side game.Side) *mcts.GameTree {
	if tree, ok := e.precomputedTree(board, side); ok {
		return tree
	}
	return mcts.NewEngine(e.MCTS).Search(board, current, other, side)
}

// precomputedTree loads the tree slice for (board's ply, side) from
// e.TreeDir, if configured. A missing or malformed file is logged and
// treated as absent, per the MCTS front door's fallback-to-live-search
// contract.
func (e *Engine) precomputedTree(board *game.Board, side game.Side) (*mcts.GameTree, bool) {
	if e.TreeDir == "" {
		return nil, false
	}
	tree, err := mcts.LoadSlice(e.TreeDir, board.OccupancyCount(), side)
	if err != nil {
		// LoadSlice only ever raises InvalidFileError; the front door
		// catches it here and falls back to a live search.
		var invalid *mcts.InvalidFileError
		if !errors.As(err, &invalid) {
			panic(err) // not the documented error taxonomy: a bug
		}
		klog.V(2).Infof("bot: no pre-computed tree for this position, searching live: %v", err)
		return nil, false
	}
	return tree, true
}
