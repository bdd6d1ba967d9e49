// Package minimax implements exact search with depth-preferring
// tie-breaks, for positions narrow enough to exhaust outright.
package minimax

import (
	"k8s.io/klog/v2"

	"github.com/Esadruhn/quantikai/game"
)

// MaxTableSize bounds the transposition table: once it grows past this
// many entries the table is dropped and rebuilt from empty, trading a
// little re-computation for a hard memory ceiling. Modeled on the same
// trade-off a bounded alpha-beta transposition cache makes.
var MaxTableSize = 2000000

type tableKey struct {
	board game.FrozenBoard
	side  game.Side
}

type tableEntry struct {
	value   int
	horizon int
	move    game.Move
	hasMove bool
}

// Searcher runs minimax with transposition memory across calls. A fresh
// Searcher per request is fine; reuse is only an optimization.
type Searcher struct {
	table map[tableKey]tableEntry
}

// NewSearcher returns a Searcher with an empty transposition table.
func NewSearcher() *Searcher {
	return &Searcher{table: make(map[tableKey]tableEntry)}
}

// BestMove returns the best move for side on board given both hands. If
// side has no legal move, ok is false and the returned value is -1 (a
// loss for side).
func (s *Searcher) BestMove(board *game.Board, hands map[game.Side]*game.Hand, side game.Side) (m game.Move, ok bool, value int) {
	value, m, ok, _ = s.search(board, hands, side)
	return m, ok, value
}

// search returns the value of the position for side to move, the best
// move achieving it (if any), whether a move exists, and the horizon:
// how many plies from this node until that value is resolved. horizon is
// relative to this node (not to the root), so it stays valid across
// transpositions reached at different depths from the root.
func (s *Searcher) search(board *game.Board, hands map[game.Side]*game.Hand, side game.Side) (value int, best game.Move, ok bool, horizon int) {
	key := tableKey{board: board.Freeze(), side: side}
	if e, cached := s.table[key]; cached {
		return e.value, e.move, e.hasMove, e.horizon
	}

	moves := board.GenerateMoves(hands[side], side, true)
	if len(moves) == 0 {
		s.store(key, -1, game.Move{}, false, 0)
		return -1, game.Move{}, false, 0
	}

	bestValue := -2
	bestHorizon := -1
	var bestMove game.Move
	haveBest := false

	for _, m := range moves {
		childBoard := board.Clone()
		childHands := map[game.Side]*game.Hand{
			game.Blue: hands[game.Blue].Clone(),
			game.Red:  hands[game.Red].Clone(),
		}
		if err := childHands[side].Remove(m.Shape); err != nil {
			klog.Errorf("minimax: generated move held an unavailable shape: %v", err)
			continue
		}
		won, err := childBoard.Play(m, false)
		if err != nil {
			klog.Errorf("minimax: generated move was illegal on replay: %v", err)
			continue
		}

		var v, h int
		if won {
			v, h = 1, 1
		} else {
			childValue, _, _, childHorizon := s.search(childBoard, childHands, side.Opponent())
			v, h = -childValue, childHorizon+1
		}

		if !haveBest || better(v, h, bestValue, bestHorizon) {
			bestValue, bestHorizon, bestMove, haveBest = v, h, m, true
		}
		if v == 1 {
			break // short-circuit: a winning move can't be beaten
		}
	}

	s.store(key, bestValue, bestMove, haveBest, bestHorizon)
	return bestValue, bestMove, haveBest, bestHorizon
}

// better reports whether (v1, h1) is preferable to (v2, h2): a strictly
// higher value always wins; among equal values, the longer horizon wins —
// drag out a loss, or an unreachable win, either way giving the opponent
// more chances to err.
func better(v1, h1, v2, h2 int) bool {
	if v1 != v2 {
		return v1 > v2
	}
	return h1 > h2
}

func (s *Searcher) store(key tableKey, value int, move game.Move, hasMove bool, horizon int) {
	s.table[key] = tableEntry{value: value, horizon: horizon, move: move, hasMove: hasMove}
	if len(s.table) > MaxTableSize {
		s.table = make(map[tableKey]tableEntry)
	}
}
